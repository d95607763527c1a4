package auth

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cityOps/internal/testutil"
	"cityOps/models"
	"cityOps/repository"
)

func TestRequireAnyRole(t *testing.T) {
	ctx := WithPrincipal(context.Background(), &Principal{Name: "wu3", Kind: "driver"})
	if _, err := RequireAnyRole(ctx, models.RoleAdmin, models.RoleOperator, models.RoleDriver); err != nil {
		t.Fatalf("RequireAnyRole driver: %v", err)
	}
	_, err := RequireAnyRole(ctx, models.RoleLandlord, models.RoleAdmin)
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied, got %v", err)
	}
	if _, err := RequireAnyRole(context.Background(), models.RoleAdmin); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated without principal, got %v", err)
	}
}

func TestRequireUserRole_WithDBRoleCheck(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "authrole")
	users := repository.NewUserRepository(d)
	testutil.CreateUser(t, users, "alice", "alice@example.com", models.RoleCitizen)

	// Spoofed kind=admin but stored role is citizen.
	pctx := WithPrincipal(context.Background(), &Principal{Name: "alice", Kind: "admin"})
	if _, err := RequireUserRole(pctx, users, models.RoleAdmin); status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied for spoofed role, got %v", err)
	}

	if err := users.UpdateRole(context.Background(), "alice", models.RoleAdmin); err != nil {
		t.Fatalf("update role: %v", err)
	}
	if _, err := RequireUserRole(pctx, users, models.RoleAdmin); err != nil {
		t.Fatalf("RequireUserRole real admin: %v", err)
	}

	ghost := WithPrincipal(context.Background(), &Principal{Name: "ghost", Kind: "admin"})
	if _, err := RequireUserRole(ghost, users, models.RoleAdmin); status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied for unknown user, got %v", err)
	}
}

func TestUnaryAuthInterceptor(t *testing.T) {
	secret := "s3cr3t"
	interceptor := NewUnaryAuthInterceptor(secret, "/grpc.health.v1.Health/Check")

	hCalled := false
	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}, func(ctx context.Context, req any) (any, error) {
		hCalled = true
		if _, ok := FromContext(ctx); ok {
			t.Fatalf("expected no principal on allowlisted path")
		}
		return 123, nil
	})
	if err != nil || !hCalled {
		t.Fatalf("allowlisted handler err=%v called=%v", err, hCalled)
	}

	_, err = interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/svc/Op"}, func(ctx context.Context, req any) (any, error) {
		t.Fatalf("handler must not run without a token")
		return nil, nil
	})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}

	tok := testutil.GenerateJWTHS256(t, secret, "bob", "operator")
	ctx := testutil.CtxWithBearer(context.Background(), tok)
	_, err = interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/svc/Op"}, func(ctx context.Context, req any) (any, error) {
		p, ok := FromContext(ctx)
		if !ok || p.Name != "bob" || p.Kind != "operator" {
			t.Fatalf("principal not injected: %+v ok=%v", p, ok)
		}
		return nil, nil
	})
	if err != nil {
		t.Fatalf("interceptor auth path: %v", err)
	}
}
