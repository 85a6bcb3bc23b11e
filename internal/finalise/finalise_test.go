package finalise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rngrename/internal/errmode"
	"rngrename/internal/namegen"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		path   string
		mode   ExtMode
		want   string
		wantOK bool
	}{
		{"/d/tarball.tar.xz", KeepAll, "tar.xz", true},
		{"/d/tarball.tar.xz", KeepLast, "xz", true},
		{"/d/tarball.tar.xz", Discard, "", false},
		{"/d/README", KeepAll, "", false},
		{"/d/README", KeepLast, "", false},
		{"/d/.bashrc", KeepAll, "", false},
		{"/d/.bashrc", KeepLast, "", false},
		{"/d/.config.yaml", KeepLast, "yaml", true},
		{"/d/.config.old.yaml", KeepAll, "old.yaml", true},
		{"/d/trailing.", KeepLast, "", false},
		{"/d/photo.JPG", KeepLast, "JPG", true},
	}
	for _, tt := range tests {
		t.Run(tt.path+"/"+string(tt.mode), func(t *testing.T) {
			got, ok, err := Extension(tt.path, tt.mode, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestExtension_Static(t *testing.T) {
	got, ok, err := Extension("/d/a.txt", Static, ".b/in")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "bin", got)
}

func TestExtension_NotUTF8(t *testing.T) {
	_, _, err := Extension("/d/bad\xff.txt", KeepLast, "")
	var notUTF8 *NotUTF8Error
	require.ErrorAs(t, err, &notUTF8)

	// Discard and static never look at the original name.
	_, _, err = Extension("/d/bad\xff.txt", Discard, "")
	assert.NoError(t, err)
}

func TestOptions_Validate(t *testing.T) {
	assert.NoError(t, Options{ExtMode: KeepLast}.Validate())
	assert.NoError(t, Options{ExtMode: Static, StaticExt: "png"}.Validate())
	assert.Error(t, Options{ExtMode: Static}.Validate())
	assert.Error(t, Options{ExtMode: Static, StaticExt: "/"}.Validate())
	assert.Error(t, Options{ExtMode: "zip"}.Validate())
}

func TestFinalise(t *testing.T) {
	in := namegen.Assignment{
		{Path: "/d/one.tar.gz", Name: "a1b2"},
		{Path: "/d/two", Name: "c3d4"},
	}

	got, err := Finalise(in, Options{Prefix: "img/_", Suffix: "-x", ExtMode: KeepAll}, errmode.Handler{Mode: errmode.Halt})
	require.NoError(t, err)
	assert.Equal(t, namegen.Assignment{
		{Path: "/d/one.tar.gz", Name: "img_a1b2-x.tar.gz"},
		{Path: "/d/two", Name: "img_c3d4-x"},
	}, got)
}

func TestFinalise_StaticAndDiscard(t *testing.T) {
	in := namegen.Assignment{{Path: "/d/one.txt", Name: "ff"}}

	got, err := Finalise(in, Options{ExtMode: Static, StaticExt: "md"}, errmode.Handler{Mode: errmode.Halt})
	require.NoError(t, err)
	assert.Equal(t, "ff.md", got[0].Name)

	got, err = Finalise(in, Options{ExtMode: Discard}, errmode.Handler{Mode: errmode.Halt})
	require.NoError(t, err)
	assert.Equal(t, "ff", got[0].Name)
}

func TestFinalise_ErrorModes(t *testing.T) {
	in := namegen.Assignment{
		{Path: "/d/bad\xff.txt", Name: "00"},
		{Path: "/d/good.txt", Name: "01"},
	}

	got, err := Finalise(in, Options{ExtMode: KeepLast}, errmode.Handler{Mode: errmode.Ignore})
	require.NoError(t, err)
	assert.Equal(t, namegen.Assignment{{Path: "/d/good.txt", Name: "01.txt"}}, got)

	_, err = Finalise(in, Options{ExtMode: KeepLast}, errmode.Handler{Mode: errmode.Halt})
	var notUTF8 *NotUTF8Error
	assert.ErrorAs(t, err, &notUTF8)
}

func TestExtMode_Set(t *testing.T) {
	var m ExtMode
	require.NoError(t, m.Set("keep_all"))
	assert.Equal(t, KeepAll, m)
	assert.Error(t, m.Set("keep_some"))
}
