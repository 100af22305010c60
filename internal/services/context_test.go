package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tiennsloit/get-agent-sub001/internal/domain"
	portsmocks "github.com/tiennsloit/get-agent-sub001/internal/ports/mocks"
	"github.com/tiennsloit/get-agent-sub001/internal/state"
)

func TestContextService_RescanWorkspaceReplacesTree(t *testing.T) {
	store := state.NewContextStore()
	scanner := portsmocks.NewMockWorkspaceScanner(t)
	reader := portsmocks.NewMockDocumentReader(t)

	first := &domain.CodeStructure{Name: "a", Path: "/a", Kind: domain.NodeDirectory, Children: []domain.CodeStructure{}}
	scanner.EXPECT().Scan(mock.Anything, "/a").Return(first, nil).Once()
	scanner.EXPECT().Scan(mock.Anything, "/b").Return(nil, errors.New("permission denied")).Once()

	service := NewContextService(store, reader, scanner)

	tree, err := service.RescanWorkspace(context.Background(), "/a")
	require.NoError(t, err)
	assert.Equal(t, first, tree)
	assert.Equal(t, "/a", store.CodeStructure().Path)

	_, err = service.RescanWorkspace(context.Background(), "/b")
	require.Error(t, err)
	assert.Equal(t, "/a", store.CodeStructure().Path, "failed scan keeps the previous tree")
}

func TestContextService_RescanWorkspaceRejectsMalformedTree(t *testing.T) {
	store := state.NewContextStore()
	scanner := portsmocks.NewMockWorkspaceScanner(t)
	reader := portsmocks.NewMockDocumentReader(t)

	malformed := &domain.CodeStructure{
		Name: "a.go", Path: "/a.go", Kind: domain.NodeFile,
		Children: []domain.CodeStructure{{Name: "b", Path: "/a.go/b", Kind: domain.NodeFile}},
	}
	scanner.EXPECT().Scan(mock.Anything, "/a.go").Return(malformed, nil).Once()

	service := NewContextService(store, reader, scanner)
	_, err := service.RescanWorkspace(context.Background(), "/a.go")

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, store.CodeStructure())
}

func TestContextService_OpenFile(t *testing.T) {
	store := state.NewContextStore()
	scanner := portsmocks.NewMockWorkspaceScanner(t)
	reader := portsmocks.NewMockDocumentReader(t)

	cursor := domain.Position{Line: 1, Character: 2}
	info := &domain.ActiveFileInfo{FileName: "/w/x.go", BaseName: "x.go", Cursor: cursor}
	reader.EXPECT().ReadActiveFile(mock.Anything, "x.go", cursor, domain.Selection{}).Return(info, nil)
	reader.EXPECT().ReadActiveFile(mock.Anything, "missing.go", cursor, domain.Selection{}).Return(nil, errors.New("not found"))

	service := NewContextService(store, reader, scanner)

	got, err := service.OpenFile(context.Background(), "x.go", cursor, domain.Selection{})
	require.NoError(t, err)
	assert.Equal(t, info, got)
	assert.Equal(t, "/w/x.go", store.ActiveFile().FileName)

	_, err = service.OpenFile(context.Background(), "missing.go", cursor, domain.Selection{})
	require.Error(t, err)
	assert.Equal(t, "/w/x.go", service.Snapshot().ActiveFile.FileName)
}

func TestContextService_UpdateActiveFileKeepsTree(t *testing.T) {
	store := state.NewContextStore()
	service := NewContextService(store, portsmocks.NewMockDocumentReader(t), portsmocks.NewMockWorkspaceScanner(t))

	store.SetCodeStructure(domain.CodeStructure{Name: "root", Path: "/r", Kind: domain.NodeDirectory})
	service.UpdateActiveFile(domain.ActiveFileInfo{FileName: "/r/a.go"})

	snapshot := service.Snapshot()
	require.NotNil(t, snapshot.ActiveFile)
	require.NotNil(t, snapshot.CodeStructure)
	assert.Equal(t, "/r/a.go", snapshot.ActiveFile.FileName)
	assert.Equal(t, "/r", snapshot.CodeStructure.Path)
}
