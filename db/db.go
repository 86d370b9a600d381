package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/blog-app/blog-backend/log"
	"github.com/lib/pq"
)

type DB struct {
	Db *sql.DB
}

const defaultMaxConns = 10

// Tables are created in this order because posts reference users and
// comments reference both.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL,
		password TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		likes INT NOT NULL DEFAULT 0,
		author_id INT REFERENCES users(id))`,
	`CREATE TABLE IF NOT EXISTS comments (
		id SERIAL PRIMARY KEY,
		content TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		likes INT NOT NULL DEFAULT 0,
		author_id INT REFERENCES users(id),
		post_id INT REFERENCES posts(id))`,
}

func Init() (*DB, error) {

	postgresAddr := os.Getenv("POSTGRES_URL")
	if postgresAddr == "" {
		return nil, errors.New("$POSTGRES_URL not set")
	}

	db, err := sql.Open("postgres", postgresAddr)
	if err != nil {
		return nil, err
	}

	maxConns := defaultMaxConns
	if v := os.Getenv("DB_MAX_CONNS"); v != "" {
		maxConns, err = strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("$DB_MAX_CONNS is not a number")
		}
	}
	// A request that cannot get a connection queues on the pool until one
	// frees up.
	db.SetMaxOpenConns(maxConns)

	log.Info.Printf("Creating Tables...\n")
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			if perr, ok := err.(*pq.Error); ok {
				return nil, fmt.Errorf("%s: %s", perr.Code.Name(), perr.Error())
			}
			return nil, err
		}
	}

	log.Info.Printf("Tables Created...")
	return &DB{Db: db}, nil
}
