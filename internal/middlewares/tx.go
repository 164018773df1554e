package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-budget-stats/internal/logger"
)

const commitFailedBody = `{"error":"Internal server error"}` + "\n"

// TxMiddleware wraps an HTTP handler with a database transaction. The
// response is held back until the transaction is resolved: it is rolled back
// when the handler answers with a 4xx or 5xx status, otherwise committed, and
// a failed commit replaces the response with a 500. Callbacks registered with
// AfterCommit run only after a successful commit.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			state := &txState{tx: tx}
			bw := &bufferedResponseWriter{w: w, statusCode: http.StatusOK}
			next.ServeHTTP(bw, r.WithContext(setTxToContext(r.Context(), state)))

			if bw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				bw.flush()
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				w.Header().Del("Content-Length")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(commitFailedBody))
				return
			}

			bw.flush()
			for _, fn := range state.afterCommit {
				fn()
			}
		})
	}
}

// bufferedResponseWriter holds the status and body until flush is called.
type bufferedResponseWriter struct {
	w           http.ResponseWriter
	statusCode  int
	wroteHeader bool
	body        bytes.Buffer
}

func (bw *bufferedResponseWriter) Header() http.Header {
	return bw.w.Header()
}

func (bw *bufferedResponseWriter) WriteHeader(code int) {
	if !bw.wroteHeader {
		bw.statusCode = code
		bw.wroteHeader = true
	}
}

func (bw *bufferedResponseWriter) Write(b []byte) (int, error) {
	bw.wroteHeader = true
	return bw.body.Write(b)
}

func (bw *bufferedResponseWriter) flush() {
	bw.w.WriteHeader(bw.statusCode)
	if bw.body.Len() > 0 {
		if _, err := bw.w.Write(bw.body.Bytes()); err != nil {
			logger.Log.Errorw("failed to write response", "error", err)
		}
	}
}

type txState struct {
	tx          *sqlx.Tx
	afterCommit []func()
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, state *txState) context.Context {
	return context.WithValue(ctx, txKey, state)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	state, _ := ctx.Value(txKey).(*txState)
	if state == nil {
		return nil
	}
	return state.tx
}

// AfterCommit defers fn until the request transaction in ctx has committed.
// fn is dropped when the transaction rolls back, and runs immediately when
// ctx carries no transaction.
func AfterCommit(ctx context.Context, fn func()) {
	state, _ := ctx.Value(txKey).(*txState)
	if state == nil {
		fn()
		return
	}
	state.afterCommit = append(state.afterCommit, fn)
}
