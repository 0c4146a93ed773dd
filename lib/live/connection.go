package live

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
)

type Connection struct {
	pool *pgxpool.Pool
}

func NewConnection(ctx context.Context, host string, port uint, name, user, pass string) (*Connection, error) {
	// TODO(feat) sslmode flag, every connection currently uses the libpq default
	dsn := fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s", host, port, user, name, pass)
	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "could not connect to postgres database")
	}
	return &Connection{pool}, nil
}

func (self *Connection) Disconnect() {
	self.pool.Close()
}

func (self *Connection) Query(ctx context.Context, query string, params ...interface{}) (pgx.Rows, error) {
	return self.pool.Query(ctx, query, params...)
}
