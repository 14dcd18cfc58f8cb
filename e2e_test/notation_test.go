//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsphweid/notation/api"
	"github.com/jsphweid/notation/cmd"
	"github.com/jsphweid/notation/file"
	"github.com/jsphweid/notation/metrics"
	"github.com/jsphweid/notation/midi"
	"github.com/jsphweid/notation/store"
	"github.com/jsphweid/notation/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func run(t *testing.T, in string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, cmd.Run(context.Background(), args, strings.NewReader(in), &out))
	return out.String()
}

func TestScaleCommandE2E(t *testing.T) {
	dir := t.TempDir()
	scale := filepath.Join(dir, "scale.txt")

	out := run(t, "", "scale", "d", "dorian", "asc", "--scale-file", scale, "--midi", "--log-level", "error")
	assert.Contains(t, out, "Scale written to")

	data, err := os.ReadFile(scale)
	require.NoError(t, err)
	assert.Equal(t, "D,4\nE,4\nF,4\nG,4\nA,4\nB,4\nC,5\n", string(data))

	keys, err := midi.ReadNotes(filepath.Join(dir, "scale.mid"))
	require.NoError(t, err)
	assert.Equal(t, []uint8{62, 64, 65, 67, 69, 71, 72}, keys)
}

func TestMenuAndReportE2E(t *testing.T) {
	dir := t.TempDir()
	progressions := filepath.Join(dir, "progressions")
	flags := []string{"--scale-file", filepath.Join(dir, "scale.txt"), "--progressions-dir", progressions, "--log-level", "error"}

	run(t, "3\nblues\n1\nc\ndom\n7\n\n5\n", append([]string{"menu"}, flags...)...)

	doc, err := file.ReadProgressionFile(filepath.Join(progressions, "blues.txt"))
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 1)
	assert.Len(t, doc.Blocks[0].Notes, 4)

	out := run(t, "", append([]string{"report"}, flags...)...)
	assert.Contains(t, out, "blues")
	assert.Contains(t, out, "progressions: 1")
	assert.Contains(t, out, "notes: 4")
}

func TestServerE2E(t *testing.T) {
	m, err := metrics.New()
	require.NoError(t, err)
	adapter := theory.NewAdapter(nil)
	dir := filepath.Join(t.TempDir(), "progressions")
	st := &store.Store{Dir: dir, Expand: adapter.ExpandSpec, Midi: true, Metrics: m, Logger: zap.NewNop()}

	srv := httptest.NewServer(api.New(adapter, st, zap.NewNop(), m).Handler())
	defer srv.Close()

	body := `{"chords":[{"root":"f","quality":"major","extension":"maj7"},{"root":"g","quality":"dominant","extension":"seventh"},{"root":"c","quality":"major","extension":"triad"}]}`
	resp, err := http.Post(srv.URL+"/progression/cadence", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/progression/cadence")
	require.NoError(t, err)
	text, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	doc, err := file.ReadProgression(bytes.NewReader(text))
	require.NoError(t, err)
	assert.Len(t, doc.Blocks, 3)
	assert.Equal(t, 11, doc.NumNotes())

	keys, err := midi.ReadNotes(filepath.Join(dir, "cadence.mid"))
	require.NoError(t, err)
	assert.Len(t, keys, 11)
}
