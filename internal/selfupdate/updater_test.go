package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "AI-Tutor_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "AI-Tutor_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "AI-Tutor_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "AI-Tutor_Linux_arm64.tar.gz", false},
		{"windows amd64", "windows", "amd64", "AI-Tutor_Windows_x86_64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	input := "abc123  AI-Tutor_Linux_x86_64.tar.gz\ndef456  AI-Tutor_Darwin_all.tar.gz\n\nnot a checksum line with extra fields here\n"
	got := parseChecksums([]byte(input))

	assert.Equal(t, "abc123", got["AI-Tutor_Linux_x86_64.tar.gz"])
	assert.Equal(t, "def456", got["AI-Tutor_Darwin_all.tar.gz"])
	assert.Len(t, got, 2)
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("release payload")
	sum := sha256.Sum256(data)

	require.NoError(t, verifyChecksum(data, hex.EncodeToString(sum[:])))
	err := verifyChecksum(data, "deadbeef")
	require.ErrorIs(t, err, ErrChecksum)
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "v1.2.3", canonical("1.2.3"))
	assert.Equal(t, "v1.2.3", canonical("v1.2.3"))
	assert.Equal(t, "", canonical(""))
}

func newTestChecker(t *testing.T, latestTag string) (*Checker, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == fmt.Sprintf("/repos/%s/%s/releases/latest", defaultOwner, defaultRepo) {
			fmt.Fprintf(w, `{"tag_name": %q, "html_url": "https://example.com/release"}`, latestTag)
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	return NewChecker(WithBaseURLs(srv.URL, srv.URL)), srv
}

func TestCheck_UpdateAvailable(t *testing.T) {
	c, _ := newTestChecker(t, "v1.3.0")

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.3.0", result.LatestVersion)
	assert.Equal(t, "https://example.com/release", result.ReleaseURL)
}

func TestCheck_AlreadyLatest(t *testing.T) {
	c, _ := newTestChecker(t, "v1.2.0")

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_DevBuildNeverUpdates(t *testing.T) {
	c, _ := newTestChecker(t, "v9.9.9")

	result, err := c.Check(context.Background(), &CheckInput{Version: "(devel)"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestUpdate_DevBuildRejected(t *testing.T) {
	c := NewChecker()
	err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
	require.ErrorIs(t, err, ErrDevBuild)
}

func makeTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     name,
		Mode:     0755,
		Size:     int64(len(content)),
		Typeflag: tar.TypeReg,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())

	return buf.Bytes()
}

func TestExtractFromTarGz(t *testing.T) {
	payload := []byte("#!/bin/sh\necho new version\n")
	archive := makeTarGz(t, binaryName, payload)

	got, err := extractFromTarGz(archive, binaryName)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	_, err = extractFromTarGz(archive, "missing")
	require.Error(t, err)
}

func TestApplyUpdate_ReplacesBinary(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, binaryName)
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	newData := []byte("new binary contents")
	sum := sha256.Sum256(newData)
	require.NoError(t, applyUpdate(newData, target, sum[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestApplyUpdate_HashMismatchRejected(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, binaryName)
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	err := applyUpdate([]byte("new"), target, []byte("wrong hash"))
	require.ErrorIs(t, err, ErrChecksum)

	got, readErr := os.ReadFile(target)
	require.NoError(t, readErr)
	assert.Equal(t, []byte("old"), got, "target must be untouched on failure")
}

func TestUpdate_EndToEnd(t *testing.T) {
	payload := []byte("#!/bin/sh\necho v1.3.0\n")
	asset, err := assetNameFor("linux", "amd64")
	require.NoError(t, err)

	archive := makeTarGz(t, binaryName, payload)
	archiveSum := sha256.Sum256(archive)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == fmt.Sprintf("/repos/%s/%s/releases/latest", defaultOwner, defaultRepo):
			fmt.Fprint(w, `{"tag_name": "v1.3.0"}`)
		case r.URL.Path == fmt.Sprintf("/%s/%s/releases/download/v1.3.0/%s", defaultOwner, defaultRepo, asset):
			_, _ = w.Write(archive)
		case r.URL.Path == fmt.Sprintf("/%s/%s/releases/download/v1.3.0/checksums.txt", defaultOwner, defaultRepo):
			fmt.Fprintf(w, "%s  %s\n", hex.EncodeToString(archiveSum[:]), asset)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	dir := t.TempDir()
	target := filepath.Join(dir, binaryName)
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
	c.execPath = func() (string, error) { return target, nil }

	// Only meaningful on the platform whose asset we serve.
	if got, _ := assetNameFor(runtime.GOOS, runtime.GOARCH); got != asset {
		t.Skipf("asset for this platform is %s", got)
	}

	var stages []string
	err = c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.2.0"}, func(p UpdateProgress) {
		stages = append(stages, p.Stage)
	})
	require.NoError(t, err)
	assert.Contains(t, stages, "download")
	assert.Contains(t, stages, "done")

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}
