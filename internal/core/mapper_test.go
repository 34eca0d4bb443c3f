package core

import (
	"path/filepath"
	"testing"
)

func TestLibraryName(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"darwin", "libMaaCore.dylib"},
		{"windows", "MaaCore.dll"},
		{"linux", "libMaaCore.so"},
		{"freebsd", "libMaaCore.so"},
	}

	for _, tt := range tests {
		if got := LibraryName(tt.goos); got != tt.want {
			t.Errorf("LibraryName(%q) = %q, want %q", tt.goos, got, tt.want)
		}
	}
}

func TestExtractMapper(t *testing.T) {
	libDir := filepath.Join("dest", "lib")
	resourceDir := filepath.Join("dest", "resource")

	tests := []struct {
		name         string
		goos         string
		withResource bool
		entry        string
		want         string
		wantMapped   bool
	}{
		{
			name:         "resource_entry_preserves_subpath",
			goos:         "linux",
			withResource: true,
			entry:        "resource/foo/bar.txt",
			want:         filepath.Join(resourceDir, "foo", "bar.txt"),
			wantMapped:   true,
		},
		{
			name:         "nested_resource_entry",
			goos:         "linux",
			withResource: true,
			entry:        "MAA/resource/model/ocr.onnx",
			want:         filepath.Join(resourceDir, "model", "ocr.onnx"),
			wantMapped:   true,
		},
		{
			name:         "resource_disabled_drops_entry",
			goos:         "linux",
			withResource: false,
			entry:        "resource/foo/bar.txt",
			wantMapped:   false,
		},
		{
			name:         "library_flattened_to_lib_dir",
			goos:         "linux",
			withResource: true,
			entry:        "lib/libMaaCore.so",
			want:         filepath.Join(libDir, "libMaaCore.so"),
			wantMapped:   true,
		},
		{
			name:         "versioned_library_suffix_not_at_end",
			goos:         "linux",
			withResource: true,
			entry:        "lib/libMaaCore.so.1",
			want:         filepath.Join(libDir, "libMaaCore.so.1"),
			wantMapped:   true,
		},
		{
			name:         "windows_dll_has_no_prefix",
			goos:         "windows",
			withResource: true,
			entry:        "MaaCore.dll",
			want:         filepath.Join(libDir, "MaaCore.dll"),
			wantMapped:   true,
		},
		{
			name:         "macos_dylib",
			goos:         "darwin",
			withResource: true,
			entry:        "libMaaCore.dylib",
			want:         filepath.Join(libDir, "libMaaCore.dylib"),
			wantMapped:   true,
		},
		{
			name:         "so_file_not_matched_on_darwin",
			goos:         "darwin",
			withResource: true,
			entry:        "lib/libMaaCore.so",
			wantMapped:   false,
		},
		{
			name:         "readme_dropped",
			goos:         "linux",
			withResource: true,
			entry:        "README.md",
			wantMapped:   false,
		},
		{
			name:         "parent_components_skipped",
			goos:         "linux",
			withResource: true,
			entry:        "../resource/foo.txt",
			want:         filepath.Join(resourceDir, "foo.txt"),
			wantMapped:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapper := NewExtractMapper(tt.goos, libDir, resourceDir, tt.withResource)
			got, mapped := mapper(tt.entry)

			if mapped != tt.wantMapped {
				t.Fatalf("mapped = %v, want %v (got %q)", mapped, tt.wantMapped, got)
			}
			if mapped && got != tt.want {
				t.Errorf("mapper(%q) = %q, want %q", tt.entry, got, tt.want)
			}
		})
	}
}
