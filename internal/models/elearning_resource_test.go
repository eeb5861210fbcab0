package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolsite/internal/domain"
)

func TestSetContentYoutube(t *testing.T) {
	r := &ELearningResource{}
	r.SetContent(FileResource{Filename: "old.pdf"})
	r.SetContent(YoutubeResource{URL: "https://youtu.be/abc"})

	assert.Equal(t, domain.ResourceTypeYoutube, r.ResourceType)
	assert.Nil(t, r.Filename)
	require.NotNil(t, r.YoutubeURL)
	assert.Equal(t, "https://youtu.be/abc", *r.YoutubeURL)
	assert.Equal(t, YoutubeResource{URL: "https://youtu.be/abc"}, r.Content())
}

func TestSetContentFile(t *testing.T) {
	r := &ELearningResource{}
	r.SetContent(FileResource{Filename: "20240101_120000_paper.pdf"})

	assert.Equal(t, domain.ResourceTypeFile, r.ResourceType)
	assert.Nil(t, r.YoutubeURL)
	require.NotNil(t, r.Filename)
	assert.Equal(t, FileResource{Filename: "20240101_120000_paper.pdf"}, r.Content())
}

func TestSetContentUnresolvedFile(t *testing.T) {
	r := &ELearningResource{}
	r.SetContent(FileResource{})

	assert.Equal(t, domain.ResourceTypeFile, r.ResourceType)
	assert.Nil(t, r.Filename)
	assert.Nil(t, r.YoutubeURL)
	assert.Equal(t, FileResource{}, r.Content())
}

func TestContentUnknownType(t *testing.T) {
	r := &ELearningResource{ResourceType: "podcast"}
	assert.Nil(t, r.Content())
}
