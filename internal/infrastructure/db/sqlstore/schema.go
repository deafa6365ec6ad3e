package sqlstore

// schema holds the DDL per driver. Role extensions and credentials share the
// person id and cascade on its deletion; items reference categories without
// cascade so a referenced category cannot be removed.
var schema = map[string][]string{
	DriverSQLite: {
		`CREATE TABLE IF NOT EXISTS people (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			join_date DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			age INTEGER NOT NULL,
			gender INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			id INTEGER PRIMARY KEY REFERENCES people(id) ON DELETE CASCADE,
			shipping_address TEXT NOT NULL DEFAULT '',
			has_premium_membership BOOLEAN NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS employees (
			id INTEGER PRIMARY KEY REFERENCES people(id) ON DELETE CASCADE,
			salary DECIMAL(12,2) NOT NULL CHECK (salary >= 0),
			department_id INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS credentials (
			id INTEGER PRIMARY KEY REFERENCES people(id) ON DELETE CASCADE,
			password_hash TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			price DECIMAL(12,2) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			quantity INTEGER NOT NULL DEFAULT 0,
			is_available BOOLEAN NOT NULL DEFAULT 0,
			category_id INTEGER NOT NULL REFERENCES categories(id)
		)`,
	},
	DriverMySQL: {
		`CREATE TABLE IF NOT EXISTS people (
			id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) COLLATE utf8mb4_bin NOT NULL UNIQUE,
			join_date DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
			age INT NOT NULL,
			gender INT NOT NULL
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS customers (
			id BIGINT NOT NULL PRIMARY KEY,
			shipping_address VARCHAR(512) NOT NULL DEFAULT '',
			has_premium_membership BOOLEAN NOT NULL DEFAULT FALSE,
			CONSTRAINT fk_customers_people FOREIGN KEY (id) REFERENCES people(id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS employees (
			id BIGINT NOT NULL PRIMARY KEY,
			salary DECIMAL(12,2) NOT NULL CHECK (salary >= 0),
			department_id INT NOT NULL,
			CONSTRAINT fk_employees_people FOREIGN KEY (id) REFERENCES people(id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS credentials (
			id BIGINT NOT NULL PRIMARY KEY,
			password_hash VARCHAR(255) NOT NULL,
			CONSTRAINT fk_credentials_people FOREIGN KEY (id) REFERENCES people(id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS categories (
			id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) COLLATE utf8mb4_bin NOT NULL UNIQUE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS items (
			id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price DECIMAL(12,2) NOT NULL,
			description TEXT NOT NULL,
			quantity INT NOT NULL DEFAULT 0,
			is_available BOOLEAN NOT NULL DEFAULT FALSE,
			category_id BIGINT NOT NULL,
			CONSTRAINT fk_items_categories FOREIGN KEY (category_id) REFERENCES categories(id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	DriverPostgres: {
		`CREATE TABLE IF NOT EXISTS people (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			join_date TIMESTAMPTZ NOT NULL DEFAULT now(),
			age INTEGER NOT NULL,
			gender INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			id BIGINT PRIMARY KEY REFERENCES people(id) ON DELETE CASCADE,
			shipping_address TEXT NOT NULL DEFAULT '',
			has_premium_membership BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS employees (
			id BIGINT PRIMARY KEY REFERENCES people(id) ON DELETE CASCADE,
			salary NUMERIC(12,2) NOT NULL CHECK (salary >= 0),
			department_id INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS credentials (
			id BIGINT PRIMARY KEY REFERENCES people(id) ON DELETE CASCADE,
			password_hash TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS items (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			price NUMERIC(12,2) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			quantity INTEGER NOT NULL DEFAULT 0,
			is_available BOOLEAN NOT NULL DEFAULT FALSE,
			category_id BIGINT NOT NULL REFERENCES categories(id)
		)`,
	},
}
