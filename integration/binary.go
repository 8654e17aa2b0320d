//go:build integration
// +build integration

package integration

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"
)

func buildCartdesk(t *testing.T, ctx context.Context) string {
	t.Helper()

	bin := filepath.Join(t.TempDir(), "cartdesk")
	cmd := exec.CommandContext(ctx, "go", "build", "-o", bin, "../cmd/cartdesk")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("go build cartdesk failed: %v\n%s", err, string(out))
	}
	return bin
}
