package dberrors

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		serialization bool
		unique        bool
		foreignKey    bool
		timeout       bool
	}{
		{name: "pq serialization", err: &pq.Error{Code: "40001"}, serialization: true},
		{name: "pgx deadlock wrapped", err: fmt.Errorf("exec: %w", &pgconn.PgError{Code: "40P01"}), serialization: true},
		{name: "pq unique", err: &pq.Error{Code: "23505"}, unique: true},
		{name: "pgx foreign key", err: &pgconn.PgError{Code: "23503"}, foreignKey: true},
		{name: "deadline", err: fmt.Errorf("query: %w", context.DeadlineExceeded), timeout: true},
		{name: "query canceled", err: &pq.Error{Code: "57014"}, timeout: true},
		{name: "plain", err: errors.New("boom")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.serialization, IsSerializationFailure(tt.err))
			assert.Equal(t, tt.unique, IsUniqueViolation(tt.err))
			assert.Equal(t, tt.foreignKey, IsForeignKeyViolation(tt.err))
			assert.Equal(t, tt.timeout, IsTimeout(tt.err))
			assert.Equal(t, tt.timeout || tt.serialization, IsTransient(tt.err))
		})
	}
}

func TestIsTransient_Connection(t *testing.T) {
	assert.True(t, IsTransient(fmt.Errorf("query: %w", driver.ErrBadConn)))
	assert.True(t, IsTransient(&net.OpError{Op: "dial", Err: errors.New("refused")}))
	assert.False(t, IsTransient(&pq.Error{Code: "23505"}))
}
