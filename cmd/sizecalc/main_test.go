package main

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuery(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.String("link", "", "")
	fs.String("entry", "", "")
	fs.String("sl", "", "")
	fs.Bool("rd", false, "")
	require.NoError(t, fs.Parse([]string{"-sl", "97", "-rd"}))

	q, err := buildQuery(fs, "http://localhost:8080/?entry=100&sl=98&tp=110")
	require.NoError(t, err)

	assert.Equal(t, "100", q.Get("entry"))
	assert.Equal(t, "97", q.Get("sl"))
	assert.Equal(t, "110", q.Get("tp"))
	assert.Equal(t, "true", q.Get("rd"))
	assert.NotContains(t, q, "link")
}

func TestBuildQuery_BadLink(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	_, err := buildQuery(fs, "http://[::1")
	assert.Error(t, err)
}

func TestRun_Defaults(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, &out, io.Discard))

	assert.Contains(t, out.String(), "POSITION SIZING")
	assert.Contains(t, out.String(), "Potential profit")
}

func TestRun_Exports(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "calc.csv")
	xlsxPath := filepath.Join(dir, "calc.xlsx")

	var out bytes.Buffer
	err := run([]string{"-entry", "100", "-sl", "98", "-tp", "110", "-csv", csvPath, "-xlsx", xlsxPath}, &out, io.Discard)
	require.NoError(t, err)

	assert.FileExists(t, csvPath)
	assert.FileExists(t, xlsxPath)
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "direction,long")
}

func TestRun_Switch(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-ra", "5", "-switch", "currency"}, &out, io.Discard))

	assert.Contains(t, out.String(), "ra=50")
	assert.Contains(t, out.String(), "rd=true")
}

func TestRun_InvalidFlagValue(t *testing.T) {
	err := run([]string{"-capital", "lots"}, io.Discard, io.Discard)
	assert.Error(t, err)
}
