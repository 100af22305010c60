package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tiennsloit/get-agent-sub001/internal/domain"
	"github.com/tiennsloit/get-agent-sub001/internal/logging"
	portsmocks "github.com/tiennsloit/get-agent-sub001/internal/ports/mocks"
	"github.com/tiennsloit/get-agent-sub001/internal/state"
)

// unusableHome points PANELBRIDGE_HOME below a regular file, so nothing
// can be created under it
func unusableHome(t *testing.T) string {
	t.Helper()
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	home := filepath.Join(blocker, "home")
	t.Setenv("PANELBRIDGE_HOME", home)
	t.Setenv("PANELBRIDGE_DEBUG", "")
	return home
}

func TestAfterApplyDoesNotOpenSessionStore(t *testing.T) {
	home := unusableHome(t)
	cli := &CLI{SessionID: "default", MaxLogFiles: logging.DefaultMaxLogFiles}

	require.NoError(t, cli.AfterApply())
	assert.Nil(t, cli.container)
	assert.NoError(t, (&EscapeCmd{Text: []string{"<b>"}}).Run())
	assert.NoError(t, cli.Close())
	assert.NoFileExists(t, filepath.Join(home, "state.db"))

	_, err := cli.Container()
	assert.Error(t, err, "stateful commands still report the unusable home")
}

func TestContainerIsCreatedOnce(t *testing.T) {
	unusableHome(t)
	cli := &CLI{Ephemeral: true, SessionID: "s1", MaxLogFiles: logging.DefaultMaxLogFiles}
	require.NoError(t, cli.AfterApply())

	first, err := cli.Container()
	require.NoError(t, err)
	second, err := cli.Container()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.NoError(t, cli.Close())
}

func TestContainerCloseRetriesFailedSaves(t *testing.T) {
	store := portsmocks.NewMockSessionStore(t)
	store.EXPECT().Get(mock.Anything, "s1", mock.Anything).Return(nil, domain.ErrStateNotFound).Times(3)
	store.EXPECT().Put(mock.Anything, "s1", state.AppKey, mock.Anything).
		Return(errors.New("database is locked")).Once()
	store.EXPECT().Put(mock.Anything, "s1", mock.Anything, mock.Anything).Return(nil).Times(3)
	store.EXPECT().Close().Return(nil).Once()

	container, err := NewContainer(context.Background(), ContainerOptions{SessionID: "s1", Store: store})
	require.NoError(t, err)

	screen := domain.ScreenHistory
	container.AppStore.Merge(domain.AppStatePatch{Screen: &screen})
	require.Error(t, container.SaveError())

	assert.NoError(t, container.Close())
}

func TestContainerCloseWithoutFailuresDoesNotSave(t *testing.T) {
	store := portsmocks.NewMockSessionStore(t)
	store.EXPECT().Get(mock.Anything, "s1", mock.Anything).Return(nil, domain.ErrStateNotFound).Times(3)
	store.EXPECT().Close().Return(nil).Once()

	container, err := NewContainer(context.Background(), ContainerOptions{SessionID: "s1", Store: store})
	require.NoError(t, err)

	assert.NoError(t, container.Close())
}

func TestContainerCloseReportsRetryFailure(t *testing.T) {
	store := portsmocks.NewMockSessionStore(t)
	store.EXPECT().Get(mock.Anything, "s1", mock.Anything).Return(nil, domain.ErrStateNotFound).Times(3)
	store.EXPECT().Put(mock.Anything, "s1", mock.Anything, mock.Anything).Return(errors.New("disk full"))
	store.EXPECT().Close().Return(nil).Once()

	container, err := NewContainer(context.Background(), ContainerOptions{SessionID: "s1", Store: store})
	require.NoError(t, err)

	mode := domain.ChatModeFlow
	container.AppStore.Merge(domain.AppStatePatch{ChatMode: &mode})

	err = container.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
