// Package web is the small web kernel every handler in this project is built
// on. It wraps gin with a Handler signature that returns an error so the
// controllers stay free of response plumbing.
package web

import (
	"log"
	"os"
	"syscall"

	"github.com/gin-gonic/gin"
)

// Handler is the signature used by all application handlers.
type Handler func(c *Context) error

// Middleware is a function designed to run some code before and/or after
// another Handler.
type Middleware func(Handler) Handler

// App is the entrypoint into our application. It wraps the gin engine and
// configures our handlers and middleware.
type App struct {
	*gin.Engine
	shutdown chan os.Signal
	mw       []Middleware
}

func NewApp(shutdown chan os.Signal, mw ...Middleware) *App {
	return &App{
		Engine:   gin.New(),
		shutdown: shutdown,
		mw:       mw,
	}
}

// SignalShutdown is used to gracefully shut down the app when an integrity
// issue is identified.
func (a *App) SignalShutdown() {
	a.shutdown <- syscall.SIGTERM
}

func (a *App) handle(method string, path string, handler Handler, mw ...Middleware) {
	handler = wrapMiddleware(mw, handler)
	handler = wrapMiddleware(a.mw, handler)

	h := func(c *gin.Context) {
		ctx := &Context{
			Context: c,
			Ctx:     c.Request.Context(),
		}

		if err := handler(ctx); err != nil {
			log.Printf("web: %s %s: unhandled error: %v", method, path, err)
			a.SignalShutdown()
		}
	}

	a.Engine.Handle(method, path, h)
}

func (a *App) Get(path string, handler Handler, mw ...Middleware) {
	a.handle("GET", path, handler, mw...)
}

func (a *App) Post(path string, handler Handler, mw ...Middleware) {
	a.handle("POST", path, handler, mw...)
}

func (a *App) Put(path string, handler Handler, mw ...Middleware) {
	a.handle("PUT", path, handler, mw...)
}

func (a *App) Patch(path string, handler Handler, mw ...Middleware) {
	a.handle("PATCH", path, handler, mw...)
}

func (a *App) Delete(path string, handler Handler, mw ...Middleware) {
	a.handle("DELETE", path, handler, mw...)
}

func (a *App) Head(path string, handler Handler, mw ...Middleware) {
	a.handle("HEAD", path, handler, mw...)
}

// wrapMiddleware creates a new handler by wrapping middleware around a final
// handler. The middlewares' Handlers will be executed by requests in the order
// they are provided.
func wrapMiddleware(mw []Middleware, handler Handler) Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		h := mw[i]
		if h != nil {
			handler = h(handler)
		}
	}

	return handler
}
