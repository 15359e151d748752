package middleware

import (
	"context"
	"net/http"
)

// TenantHeader is the header carrying the caller's tenant id. The upstream
// gateway authenticates the caller and stamps this header.
const TenantHeader = "X-Tenant-ID"

type contextKey string

const tenantContextKey contextKey = "tenant_id"

// Tenant extracts the tenant id header into the request context. Requests
// without one are rejected before any handler runs.
func Tenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.Header.Get(TenantHeader)
		if tenantID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"missing tenant id"}`))
			return
		}

		ctx := context.WithValue(r.Context(), tenantContextKey, tenantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TenantFromContext returns the tenant id stored by the Tenant middleware.
func TenantFromContext(ctx context.Context) string {
	tenantID, _ := ctx.Value(tenantContextKey).(string)
	return tenantID
}
