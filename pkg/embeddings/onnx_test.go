package embeddings

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformArchive(t *testing.T) {
	tests := []struct {
		goos   string
		goarch string
		want   string
	}{
		{"linux", "amd64", "linux-x64"},
		{"linux", "arm64", "linux-aarch64"},
		{"darwin", "amd64", "osx-x86_64"},
		{"darwin", "arm64", "osx-arm64"},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := platformArchive(tt.goos, tt.goarch)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlatformArchive_Unsupported(t *testing.T) {
	_, err := platformArchive("windows", "amd64")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)

	_, err = platformArchive("linux", "riscv64")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
}

func TestLibraryName(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"linux", "libonnxruntime.so"},
		{"darwin", "libonnxruntime.dylib"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			got := libraryName(tt.goos)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrentPlatformSupported(t *testing.T) {
	// Current platform should be supported (linux or darwin)
	if runtime.GOOS == "linux" || runtime.GOOS == "darwin" {
		_, err := platformArchive(runtime.GOOS, runtime.GOARCH)
		assert.NoError(t, err)
	}
}

func TestONNXLibraryPath_EnvFirst(t *testing.T) {
	t.Setenv("ONNX_PATH", "/opt/onnx/libonnxruntime.so")
	assert.Equal(t, "/opt/onnx/libonnxruntime.so", ONNXLibraryPath())
}

// runtimeArchive builds a gzipped tarball shaped like an ONNX runtime
// release: a versioned shared library under lib/ plus an unversioned
// symlink to it.
func runtimeArchive(t *testing.T, platform, version string, withLib bool) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	gzw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gzw)

	prefix := "onnxruntime-" + platform + "-" + version + "/"

	readme := []byte("onnxruntime release")
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: prefix + "README.md",
		Mode: 0644,
		Size: int64(len(readme)),
	}))
	_, err := tw.Write(readme)
	require.NoError(t, err)

	if withLib {
		libName := libraryName(runtime.GOOS)
		versioned := libName + "." + version
		content := []byte("not a real shared library")

		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name: prefix + "lib/" + versioned,
			Mode: 0755,
			Size: int64(len(content)),
		}))
		_, err = tw.Write(content)
		require.NoError(t, err)

		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     prefix + "lib/" + libName,
			Typeflag: tar.TypeSymlink,
			Linkname: versioned,
			Mode:     0777,
		}))
	}

	require.NoError(t, tw.Close())
	require.NoError(t, gzw.Close())
	return &buf
}

func TestExtractRuntimeLibs(t *testing.T) {
	destDir := t.TempDir()
	archive := runtimeArchive(t, "linux-x64", "1.23.0", true)

	err := extractRuntimeLibs(archive, destDir, "1.23.0", "linux-x64")
	require.NoError(t, err)

	libName := libraryName(runtime.GOOS)

	// The versioned library lands flat in the destination.
	data, err := os.ReadFile(filepath.Join(destDir, libName+".1.23.0"))
	require.NoError(t, err)
	assert.Equal(t, "not a real shared library", string(data))

	// The unversioned name resolves through the symlink.
	target, err := os.Readlink(filepath.Join(destDir, libName))
	require.NoError(t, err)
	assert.Equal(t, libName+".1.23.0", target)

	// Files outside lib/ stay out.
	_, err = os.Stat(filepath.Join(destDir, "README.md"))
	assert.True(t, os.IsNotExist(err))
}

func TestExtractRuntimeLibs_MissingLibrary(t *testing.T) {
	destDir := t.TempDir()
	archive := runtimeArchive(t, "linux-x64", "1.23.0", false)

	err := extractRuntimeLibs(archive, destDir, "1.23.0", "linux-x64")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in archive")
}
