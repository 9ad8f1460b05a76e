package commands

import (
	"fmt"
	"log"

	"timeclock/backend/internal/pkg/repository/postgresql"

	"github.com/pkg/errors"
)

// ErrHelp provides context that help was given.
var ErrHelp = errors.New("provided help")

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{
	{
		Index:       1,
		Description: "Create enum types",
		Query: `
        CREATE TYPE "user_role" AS ENUM ('EMPLOYEE', 'MANAGER', 'ADMIN');
        CREATE TYPE "shift_type" AS ENUM ('MORNING', 'AFTERNOON', 'NIGHT');
        CREATE TYPE "session_status" AS ENUM ('open', 'submitted', 'approved', 'rejected', 'paid');
        CREATE TYPE "audit_action" AS ENUM ('create', 'submit', 'submit_edit', 'cancel_edit', 'approve', 'reject', 'auto_submit');
        CREATE TYPE "benefit_category" AS ENUM ('HEALTH', 'FINANCIAL', 'TIME_OFF', 'WELLNESS');`,
	},
	{
		Index:       2,
		Description: "Create table: users.",
		Query: `
        CREATE TABLE IF NOT EXISTS users (
            id serial primary key,
            full_name text not null,
            email text not null,
            password text not null,
            role user_role not null default 'EMPLOYEE',
            hourly_rate numeric(10,2),
            shift_type shift_type,
            client_id text,
            site_ids jsonb,
            created_at timestamptz default now(),
            created_by int references users(id),
            updated_at timestamptz,
            updated_by int references users(id),
            deleted_at timestamptz,
            deleted_by int references users(id)
        );
        CREATE UNIQUE INDEX IF NOT EXISTS users_email_live
            ON users (lower(email)) WHERE deleted_at IS NULL;`,
	},
	{
		Index:       3,
		Description: "Create admin with email admin@timeclock.local, password: 1",
		Query: `
        INSERT INTO users(full_name, email, role, password)
        SELECT 'Administrator', 'admin@timeclock.local', 'ADMIN', '$2a$10$NKtnMwDPFSQLG6uOi4Zqheru5Ygbj9TWFHjpl478rRSaO5cJ9QuH2'
        WHERE NOT EXISTS (SELECT id FROM users WHERE email = 'admin@timeclock.local');
        `,
	},
	{
		Index:       4,
		Description: "Create table: clock_sessions.",
		Query: `
        CREATE TABLE IF NOT EXISTS clock_sessions (
            id serial primary key,
            user_id int not null references users(id),
            user_email text,
            clock_in_at timestamptz not null,
            clock_out_at timestamptz,
            break_minutes int not null default 0,
            total_minutes int,
            status session_status not null default 'open',
            submitted_at timestamptz,
            reviewed_at timestamptz,
            approver_id int references users(id),
            approver_comment text,
            pending_clock_in_at timestamptz,
            pending_clock_out_at timestamptz,
            pending_break_minutes int,
            pending_reason text,
            pending_requested_by int references users(id),
            pending_requested_at timestamptz,
            created_at timestamptz default now(),
            created_by int references users(id),
            updated_at timestamptz,
            updated_by int references users(id),
            deleted_at timestamptz,
            deleted_by int references users(id)
        );
        CREATE INDEX IF NOT EXISTS clock_sessions_user_clock_in
            ON clock_sessions (user_id, clock_in_at DESC);`,
	},
	{
		Index:       5,
		Description: "At most one open session per user.",
		Query: `
        CREATE UNIQUE INDEX IF NOT EXISTS clock_sessions_one_open
            ON clock_sessions (user_id) WHERE status = 'open' AND deleted_at IS NULL;`,
	},
	{
		Index:       6,
		Description: "Create table: timesheet_audit.",
		Query: `
        CREATE TABLE IF NOT EXISTS timesheet_audit (
            id serial primary key,
            session_id int not null references clock_sessions(id),
            actor_id int not null references users(id),
            actor_email text not null default '',
            action audit_action not null,
            from_status text,
            to_status text,
            note text,
            payload jsonb,
            created_at timestamptz default now()
        );
        CREATE INDEX IF NOT EXISTS timesheet_audit_session_created
            ON timesheet_audit (session_id, created_at DESC);`,
	},
	{
		Index:       7,
		Description: "Create table: benefits.",
		Query: `
        CREATE TABLE IF NOT EXISTS benefits (
            id serial primary key,
            name text not null,
            short_label text not null,
            category benefit_category not null,
            icon text,
            description text not null,
            highlights jsonb not null default '[]',
            eligibility text,
            is_active boolean not null default true,
            display_order int not null default 0,
            created_at timestamptz default now(),
            created_by int references users(id),
            updated_at timestamptz,
            updated_by int references users(id),
            deleted_at timestamptz,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       8,
		Description: "Seed benefits catalog when empty.",
		Query: `
        INSERT INTO benefits (name, short_label, category, icon, description, highlights, eligibility, display_order)
        SELECT * FROM (VALUES
            ('Medical Insurance', 'Health', 'HEALTH'::benefit_category, '🏥',
             'Employer-sponsored medical plan with multiple coverage options for you and your eligible dependents.',
             '["Company contribution toward premiums","In-network and out-of-network coverage","Preventive care at low or no cost"]'::jsonb,
             'Full-time employees, first of the month after hire', 0),
            ('Dental Insurance', 'Dental', 'HEALTH'::benefit_category, '🦷',
             'Comprehensive dental coverage for preventive, basic, and major services.',
             '["100% covered preventive exams and cleanings (in-network)","Coverage for fillings and other basic services","Orthodontia available on select plans"]'::jsonb,
             'Full-time employees, first of the month after hire', 1),
            ('Vision Insurance', 'Vision', 'HEALTH'::benefit_category, '👓',
             'Vision plan that supports annual eye exams, lenses, frames, and contacts.',
             '["Annual eye exam benefit","Allowance for frames or contacts","Discounts on additional pairs"]'::jsonb,
             'Full-time employees, first of the month after hire', 2),
            ('401(k) Retirement Plan', '401(k)', 'FINANCIAL'::benefit_category, '💰',
             'Pre-tax and Roth 401(k) retirement plan with an employer match to help you save for the future.',
             '["Pre-tax and Roth contribution options","Employer match (customize % as needed)","Vesting schedule configurable per policy"]'::jsonb,
             'Employees meeting plan eligibility requirements', 3),
            ('Life & AD&D Insurance', 'Life', 'FINANCIAL'::benefit_category, '🛡️',
             'Company-paid basic life and accidental death & dismemberment (AD&D) coverage.',
             '["Company-paid base coverage","Optional supplemental coverage for employees and dependents","Flexible beneficiary designations"]'::jsonb,
             'Full-time employees', 4),
            ('Paid Time Off (PTO)', 'PTO', 'TIME_OFF'::benefit_category, '🌴',
             'Flexible paid time off for vacation, personal time, and rest.',
             '["Accrued or front-loaded bank (per company policy)","Use for vacation, personal appointments, and rest","Manager-approved scheduling for coverage"]'::jsonb,
             'Employees as defined by policy', 5),
            ('Paid Company Holidays', 'Holidays', 'TIME_OFF'::benefit_category, '🎉',
             'A standard set of paid company holidays each year.',
             '["Core national holidays","Additional floating holidays configurable"]'::jsonb,
             'Full-time employees (pro-rated for part-time where applicable)', 6),
            ('Sick Time', 'Sick Leave', 'TIME_OFF'::benefit_category, '🤒',
             'Paid time away from work when you or your dependents are ill.',
             '["Compliant with local sick leave regulations","Can be used for family care"]'::jsonb,
             'Employees as defined by local law and policy', 7),
            ('Employee Assistance Program (EAP)', 'EAP', 'WELLNESS'::benefit_category, '💬',
             'Confidential support for mental health, financial counseling, and life events.',
             '["Confidential 24/7 access","Short-term counseling sessions","Resources for legal and financial topics"]'::jsonb,
             'All employees', 8),
            ('Learning & Development', 'L&D', 'WELLNESS'::benefit_category, '🎓',
             'Support for professional development through courses, certifications, and learning resources.',
             '["Annual learning budget (customize amount)","Access to online learning platforms","Role-specific training and career pathing"]'::jsonb,
             'Employees meeting program guidelines', 9)
        ) AS seed(name, short_label, category, icon, description, highlights, eligibility, display_order)
        WHERE NOT EXISTS (SELECT id FROM benefits);`,
	},
}

// Migrate creates the scheme in the database.
func Migrate(db *postgresql.Database) {
	for _, s := range scheme {
		if _, err := db.Query(s.Query); err != nil {
			log.Fatalln("migrate error", err)
		}
	}
}

func MigrateUP(db *postgresql.Database) {
	var (
		version int
		dirty   bool
		er      *string
	)
	err := db.QueryRow("SELECT version, dirty, error FROM schema_migrations").Scan(&version, &dirty, &er)
	if err != nil {
		if err.Error() == `ERROR: relation "schema_migrations" does not exist (SQLSTATE=42P01)` {
			if _, err = db.Exec(`
				CREATE TABLE IF NOT EXISTS schema_migrations (version int not null, dirty bool not null, error text);
				DELETE FROM schema_migrations;
				INSERT INTO schema_migrations (version, dirty) values (0, false);
			`); err != nil {
				log.Fatalln("migrate schema_migrations create error", err)
			}
			version = 0
			dirty = false
		} else {
			log.Fatalln("migrate schema_migrations scan: ", err)
		}
	}

	if dirty {
		for _, v := range scheme {
			if v.Index == version {
				if _, err = db.Exec(v.Query); err != nil {
					if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s'`, err.Error())); err != nil {
						log.Fatalln("migrate error", err)
					}
					log.Fatalln(fmt.Sprintf("migrate error version: %d", version), err)
				}
				if _, err = db.Exec(`UPDATE schema_migrations SET dirty = false, error = null`); err != nil {
					log.Fatalln("migrate error", err)
				}
			}
		}
	}

	for _, s := range scheme {
		if s.Index > version {
			if _, err = db.Exec(s.Query); err != nil {
				if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s', version = %d, dirty = true`, err.Error(), s.Index)); err != nil {
					log.Fatalln("migrate error", err)
				}
				log.Fatalln(fmt.Sprintf("migrate error version: %d", s.Index), err)
			}
			if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET version = %d`, s.Index)); err != nil {
				log.Fatalln("migrate error", err)
			}
		}
	}
}
