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

func TestReleaseAsset(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "lingvo_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "lingvo_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "lingvo_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "lingvo_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "lingvo_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "lingvo_Windows_x86_64.zip", false},
		{"unsupported os", "plan9", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := releaseAsset(tt.goos, tt.goarch)
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
	input := "abc123  lingvo_Darwin_all.tar.gz\nbadline\n\nfoo bar baz\ndef456  lingvo_Linux_x86_64.tar.gz\n"
	got := parseChecksums([]byte(input))
	assert.Equal(t, map[string]string{
		"lingvo_Darwin_all.tar.gz":   "abc123",
		"lingvo_Linux_x86_64.tar.gz": "def456",
	}, got)
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("hello world")
	sum := sha256.Sum256(data)

	assert.NoError(t, verifyChecksum(data, hex.EncodeToString(sum[:])))

	err := verifyChecksum(data, "0000000000000000000000000000000000000000000000000000000000000000")
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestExtractBinary(t *testing.T) {
	content := []byte("#!/bin/sh\necho lingvo")

	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTarGz(t, "lingvo", content)
		got, err := extractBinary(archive, "lingvo_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		archive := buildTarGz(t, "README.md", content)
		_, err := extractBinary(archive, "lingvo_Linux_x86_64.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestApplyUpdatePreservesMode(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "lingvo")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o755))

	newData := []byte("new-binary-content")
	sum := sha256.Sum256(newData)
	require.NoError(t, applyUpdate(newData, target, sum[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/osokin/lingvo/releases/latest", r.URL.Path)
		_, _ = w.Write([]byte(`{"tag_name":"v1.2.0","html_url":"https://example.com/v1.2.0"}`))
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURL(server.URL))

	t.Run("newer available", func(t *testing.T) {
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
		assert.Equal(t, "v1.2.0", result.LatestVersion)
	})

	t.Run("already current", func(t *testing.T) {
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("unprefixed version", func(t *testing.T) {
		result, err := checker.Check(context.Background(), &CheckInput{Version: "1.1.0"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
	})
}

func TestUpdate(t *testing.T) {
	content := []byte("new-lingvo-binary")
	archive := buildTarGz(t, "lingvo", content)
	archiveSum := sha256.Sum256(archive)
	archiveHex := hex.EncodeToString(archiveSum[:])

	asset, err := releaseAsset("linux", "amd64")
	require.NoError(t, err)

	newServer := func(checksums string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/repos/osokin/lingvo/releases/latest":
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
			case fmt.Sprintf("/osokin/lingvo/releases/download/v2.0.0/%s", asset):
				_, _ = w.Write(archive)
			case "/osokin/lingvo/releases/download/v2.0.0/checksums.txt":
				_, _ = w.Write([]byte(checksums))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
	}

	t.Run("dev build", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := newServer("")
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v2.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	// The happy path only runs where the asset name matches the test
	// archive's platform.
	t.Run("happy path", func(t *testing.T) {
		if a, err := releaseAsset(runtime.GOOS, runtime.GOARCH); err != nil || a != asset {
			t.Skip("test archive targets linux/amd64")
		}

		dir := t.TempDir()
		execPath := filepath.Join(dir, "lingvo")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0o755))

		server := newServer(fmt.Sprintf("%s  %s\n", archiveHex, asset))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, content, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		if a, err := releaseAsset(runtime.GOOS, runtime.GOARCH); err != nil || a != asset {
			t.Skip("test archive targets linux/amd64")
		}

		server := newServer(fmt.Sprintf("%s  %s\n",
			"0000000000000000000000000000000000000000000000000000000000000000", asset))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})
}

func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0o755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
