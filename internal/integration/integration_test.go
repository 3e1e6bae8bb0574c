package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/jakoblorz/go-projectctx/internal/filesystem"
	"github.com/jakoblorz/go-projectctx/internal/models"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestRegistry_NewUnknown(t *testing.T) {
	_, err := DefaultRegistry().New(context.Background(), Options{Name: "electron", FS: filesystem.NewMockFileSystem()})
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestRegistry_ConstructorErrorIsWrapped(t *testing.T) {
	boom := errors.New("boom")
	reg := Registry{"broken": func(context.Context, Options) (Integration, error) { return nil, boom }}

	_, err := reg.New(context.Background(), Options{Name: "broken"})
	require.ErrorIs(t, err, boom)
	require.False(t, errors.Is(err, ErrNotFound))
}

func TestRegistry_Names(t *testing.T) {
	require.Equal(t, []string{"capacitor", "cordova", "enterprise"}, DefaultRegistry().Names())
}

func TestCapacitor_Personalize(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/workspace/capacitor.config.json", []byte(`{
  "appId": "io.ionic.starter",
  "appName": "starter",
  "webDir": "www"
}`))

	in, err := DefaultRegistry().New(context.Background(), Options{Name: "capacitor", Root: "/workspace", FS: fs})
	require.NoError(t, err)
	require.Equal(t, "capacitor", in.Name())
	require.Equal(t, "/workspace", in.Root())

	err = in.Personalize(context.Background(), models.PersonalizationDetails{Name: "My App", PackageID: "com.example.app"})
	require.NoError(t, err)

	content := fs.Content("/workspace/capacitor.config.json")
	require.Equal(t, "My App", gjson.GetBytes(content, "appName").String())
	require.Equal(t, "com.example.app", gjson.GetBytes(content, "appId").String())
	require.Equal(t, "www", gjson.GetBytes(content, "webDir").String())
}

func TestCapacitor_PersonalizeWithoutConfig(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/workspace")

	in, err := DefaultRegistry().New(context.Background(), Options{Name: "capacitor", Root: "/workspace", FS: fs})
	require.NoError(t, err)
	require.NoError(t, in.Personalize(context.Background(), models.PersonalizationDetails{Name: "x"}))
	require.False(t, fs.Exists("/workspace/capacitor.config.json"))
}

func TestCordova_Personalize(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/workspace/config.xml", []byte(`<?xml version='1.0' encoding='utf-8'?>
<widget id="io.ionic.starter" version="0.0.1" xmlns="http://www.w3.org/ns/widgets">
    <name>MyApp</name>
    <description>An awesome Ionic/Cordova app.</description>
</widget>
`))

	in, err := DefaultRegistry().New(context.Background(), Options{Name: "cordova", Root: "/workspace", FS: fs})
	require.NoError(t, err)

	err = in.Personalize(context.Background(), models.PersonalizationDetails{Name: "Tom & Jerry", PackageID: "com.example.$app"})
	require.NoError(t, err)

	content := string(fs.Content("/workspace/config.xml"))
	require.Contains(t, content, `<widget id="com.example.$app" version="0.0.1"`)
	require.Contains(t, content, `<name>Tom &amp; Jerry</name>`)
	require.Contains(t, content, `<description>An awesome Ionic/Cordova app.</description>`)
}

func TestEnterprise_PersonalizeHonorsContext(t *testing.T) {
	in, err := DefaultRegistry().New(context.Background(), Options{Name: "enterprise", Root: "/workspace"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, in.Personalize(ctx, models.PersonalizationDetails{}), context.Canceled)
}
