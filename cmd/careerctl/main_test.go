package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"career-compass/internal/domain"
	"career-compass/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCatalogValidate(t *testing.T) {
	out, err := runCLI(t, "catalog", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "areas:          6")
	assert.Contains(t, out, "catalog ok")
}

func TestSessionsListAndShow(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SESSIONS_DIR", dir)

	repo := repository.NewSessionFileRepository(dir)
	first, err := repo.Create(context.Background(), domain.SessionDraft{StudentName: "Asha", Grade: "Class 12"})
	require.NoError(t, err)
	second, err := repo.Create(context.Background(), domain.SessionDraft{Grade: "Class 10"})
	require.NoError(t, err)

	out, err := runCLI(t, "sessions", "list", "--json")
	require.NoError(t, err)
	var listed []domain.Session
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[0].ID)

	out, err = runCLI(t, "sessions", "show", first.ID)
	require.NoError(t, err)
	var shown domain.Session
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "Asha", shown.StudentName)

	_, err = runCLI(t, "sessions", "show", "missing")
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.CodeSessionNotFound))
}

func TestIssueToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")

	out, err := runCLI(t, "issue-token", "--subject", "ops", "--ttl", "1h")
	require.NoError(t, err)
	var token struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &token))
	assert.NotEmpty(t, token.Token)
}
