package supabase

import (
	"context"
	"net/http"
)

// ExecSQL calls the exec_sql RPC function. It only exists on projects that define it
// and normally needs the service role key.
func (c *Client) ExecSQL(ctx context.Context, sql string) error {
	const op = "storage.supabase.ExecSQL"

	return c.do(ctx, request{
		op:     op,
		method: http.MethodPost,
		path:   restPrefix + "rpc/exec_sql",
		body:   map[string]string{"sql": sql},
	}, nil)
}
