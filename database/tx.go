// Package database — Transaction yönetimi.
//
// WithTx, birden fazla DB operasyonunun atomik (all-or-nothing) çalışmasını
// sağlar. Örneğin kullanıcı deaktive edilirken hem users satırı güncellenir
// hem de tüm oturumları silinir — ikisi tek transaction'da olmalıdır.
//
// Kullanım:
//
//	err := database.WithTx(ctx, db.Conn, func(tx *sql.Tx) error {
//	    if _, err := tx.ExecContext(ctx, "UPDATE ...", ...); err != nil {
//	        return err  // → ROLLBACK
//	    }
//	    if _, err := tx.ExecContext(ctx, "DELETE ...", ...); err != nil {
//	        return err  // → ROLLBACK
//	    }
//	    return nil  // → COMMIT
//	})
package database

import (
	"context"
	"database/sql"
	"fmt"
)

// TxQuerier, hem *sql.DB hem *sql.Tx tarafından karşılanan interface.
//
// Repository'ler bu interface'i dependency olarak alırsa,
// normal operasyonlarda *sql.DB, transaction içinde *sql.Tx geçilebilir.
// database/sql paketinde bu interface tanımlı değildir — biz tanımlıyoruz
// (Go duck typing sayesinde hem DB hem Tx karşılar).
type TxQuerier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// WithTx, fn'i bir transaction içinde çalıştırır.
//
// - fn nil dönerse → COMMIT
// - fn error dönerse → ROLLBACK
// - fn panic atarsa → ROLLBACK + panic tekrar fırlatılır
//
// Panic recovery olmasa ROLLBACK yapılmadan transaction açık kalır —
// SQLite'ta bu DB lock'a neden olur.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("%w (rollback also failed: %v)", err, rbErr)
			}
			return
		}

		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", commitErr)
		}
	}()

	err = fn(tx)
	return
}
