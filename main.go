package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/auth"
	"timeclock/backend/internal/commands"
	"timeclock/backend/internal/pkg/config"
	"timeclock/backend/internal/pkg/repository/postgresql"
	"timeclock/backend/internal/router"

	"github.com/ardanlabs/conf"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("startup: %v", err)
	}
}

func run() error {
	var flags struct {
		conf.Version
		Web struct {
			Port  string `conf:"default::8080"`
			Debug bool   `conf:"default:false"`
		}
	}
	flags.Version.SVN = "1.0"
	flags.Version.Desc = "time and attendance backend"

	if err := conf.Parse(os.Args[1:], "TIMECLOCK", &flags); err != nil {
		switch {
		case errors.Is(err, conf.ErrHelpWanted):
			usage, err := conf.Usage("TIMECLOCK", &flags)
			if err != nil {
				return errors.Wrap(err, "generating config usage")
			}
			fmt.Println(usage)
			return nil
		case errors.Is(err, conf.ErrVersionWanted):
			version, err := conf.VersionString("TIMECLOCK", &flags)
			if err != nil {
				return errors.Wrap(err, "generating config version")
			}
			fmt.Println(version)
			return nil
		}
		return errors.Wrap(err, "parsing config")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	postgresDB := postgresql.NewDatabase(postgresql.Config{
		Username:   cfg.DBUsername,
		Password:   cfg.DBPassword,
		Host:       cfg.DBHost,
		Port:       cfg.DBPort,
		Name:       cfg.DBName,
		DisableTLS: cfg.DisableTLS,
		Debug:      flags.Web.Debug,
	})
	defer postgresDB.Close()

	commands.MigrateUP(postgresDB)

	redisDB := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer redisDB.Close()

	a, err := auth.NewAuth(cfg.PrivateKeyFile)
	if err != nil {
		return errors.Wrap(err, "constructing auth")
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	app := web.NewApp(shutdown)
	r := router.NewRouter(app, postgresDB, redisDB, flags.Web.Port, a, cfg)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- r.Init()
	}()

	select {
	case err := <-serverErrors:
		return errors.Wrap(err, "server error")
	case sig := <-shutdown:
		log.Printf("shutdown: started, signal %v", sig)
	}

	return nil
}
