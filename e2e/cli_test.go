package e2e_test

import (
	"context"
	"encoding/json"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordduel/internal/api"
	"github.com/mcoot/wordduel/internal/factory"
	"github.com/mcoot/wordduel/internal/testutil"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "wordduel-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/wordduel")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(player string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--player", player,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// startTestServer runs the full API on a free local port
func startTestServer(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	logger := testutil.NopLogger()
	app, err := factory.New(context.Background(), factory.Config{
		LexiconPath: filepath.Join(findProjectRoot(t), "data", "words.txt"),
		Logger:      logger,
	})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		MatchController: app.MatchController,
		ScoringService:  app.ScoringService,
		HubManager:      app.HubManager,
		Broadcaster:     app.Broadcaster,
	})

	config := api.DefaultServerConfig()
	config.ShutdownTimeout = 5 * time.Second
	server := api.NewServer(router, config, logger)

	go func() {
		if err := server.Serve(listener); err != nil {
			t.Logf("server error: %v", err)
		}
	}()

	t.Cleanup(func() {
		_ = server.Shutdown(context.Background())
		_ = app.Close()
	})

	return "http://" + listener.Addr().String()
}

// Response types for JSON parsing
type matchResponse struct {
	ID             string   `json:"id"`
	State          string   `json:"state"`
	Hand           []string `json:"hand"`
	Opponent       string   `json:"opponent"`
	OpponentPassed bool     `json:"opponent_passed"`
	MyTurn         bool     `json:"my_turn"`
	Ended          bool     `json:"ended"`
	BagCount       int      `json:"bag_count"`
	Scores         struct {
		Mine   int `json:"mine"`
		Theirs int `json:"theirs"`
	} `json:"scores"`
}

type rosterResponse struct {
	Matches []string `json:"matches"`
}

type wordScoreResponse struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func decode[T any](t *testing.T, output string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(output), &v), "output: %s", output)
	return v
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	cli := newCLIRunner(t, startTestServer(t))

	output, err := cli.run("", "health")
	require.NoError(t, err, "output: %s", output)
	assert.Equal(t, "ok", decode[healthResponse](t, output).Status)
}

func TestCLI_FullMatchFlow(t *testing.T) {
	cli := newCLIRunner(t, startTestServer(t))

	// Alice challenges Bob
	output, err := cli.run("alice", "match", "create", "bob")
	require.NoError(t, err, "output: %s", output)
	created := decode[matchResponse](t, output)
	assert.Equal(t, "bob", created.Opponent)
	assert.True(t, created.MyTurn)
	assert.Len(t, created.Hand, 7)
	assert.Equal(t, 86, created.BagCount)

	// Both see it
	for _, player := range []string{"alice", "bob"} {
		output, err = cli.run(player, "match", "list")
		require.NoError(t, err, "output: %s", output)
		assert.Equal(t, []string{created.ID}, decode[rosterResponse](t, output).Matches)
	}

	// Bob sees his own hand and waits
	output, err = cli.run("bob", "match", "get", created.ID)
	require.NoError(t, err, "output: %s", output)
	bobView := decode[matchResponse](t, output)
	assert.False(t, bobView.MyTurn)
	assert.Len(t, bobView.Hand, 7)

	// Two passes end the match
	output, err = cli.run("alice", "match", "pass", created.ID)
	require.NoError(t, err, "output: %s", output)
	output, err = cli.run("bob", "match", "pass", created.ID)
	require.NoError(t, err, "output: %s", output)
	ended := decode[matchResponse](t, output)
	assert.True(t, ended.Ended)
	assert.Equal(t, "ended", ended.State)

	// Both acknowledge
	for _, player := range []string{"alice", "bob"} {
		output, err = cli.run(player, "match", "ack", created.ID)
		require.NoError(t, err, "output: %s", output)
		assert.Equal(t, "Match acknowledged", decode[messageResponse](t, output).Message)

		output, err = cli.run(player, "match", "list")
		require.NoError(t, err, "output: %s", output)
		assert.Empty(t, decode[rosterResponse](t, output).Matches)
	}

	// The match is gone
	output, err = cli.run("alice", "match", "get", created.ID)
	assert.Error(t, err)
	assert.Contains(t, output, "MATCH_NOT_FOUND")
}

func TestCLI_WordScore(t *testing.T) {
	cli := newCLIRunner(t, startTestServer(t))

	output, err := cli.run("", "word", "score", "quiz")
	require.NoError(t, err, "output: %s", output)
	assert.Equal(t, wordScoreResponse{Word: "QUIZ", Score: 22}, decode[wordScoreResponse](t, output))

	output, err = cli.run("", "word", "score", "zzqx")
	assert.Error(t, err)
	assert.Contains(t, output, "WORD_NOT_FOUND")
}

func TestCLI_ErrorHandling(t *testing.T) {
	cli := newCLIRunner(t, startTestServer(t))

	// No identity
	output, err := cli.run("", "match", "list")
	assert.Error(t, err)
	assert.Contains(t, output, "UNAUTHORIZED")

	// Playing yourself
	output, err = cli.run("alice", "match", "create", "alice")
	assert.Error(t, err)
	assert.Contains(t, output, "SELF_MATCH")

	// Out of turn
	output, err = cli.run("alice", "match", "create", "bob")
	require.NoError(t, err, "output: %s", output)
	created := decode[matchResponse](t, output)

	output, err = cli.run("bob", "match", "pass", created.ID)
	assert.Error(t, err)
	assert.Contains(t, output, "NOT_YOUR_TURN")

	// Malformed placement never reaches the server
	output, err = cli.run("alice", "match", "play", created.ID, "7,7")
	assert.Error(t, err)
	assert.Contains(t, output, "expected <piece>:<letter>@<x>,<y>")

	// Not a participant
	output, err = cli.run("carol", "match", "get", created.ID)
	assert.Error(t, err)
	assert.Contains(t, output, "NOT_IN_MATCH")
}
