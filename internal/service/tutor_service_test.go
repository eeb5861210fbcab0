package service_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"schoolsite/internal/domain"
	"schoolsite/internal/models"
	"schoolsite/internal/repository"
	"schoolsite/internal/service"
	"schoolsite/internal/testutil"
	"schoolsite/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGenerator struct {
	lastKey     string
	lastRequest llm.Request
	illustrated bool
	err         error
}

func (f *fakeGenerator) Complete(_ context.Context, apiKey string, req llm.Request) (string, error) {
	f.lastKey = apiKey
	f.lastRequest = req
	if f.err != nil {
		return "", f.err
	}
	return "answer", nil
}

func (f *fakeGenerator) Illustrate(_ context.Context, _ string, _ string) ([]byte, error) {
	f.illustrated = true
	return []byte("img"), nil
}

func newTutor(t *testing.T, key string) (*service.TutorService, *fakeGenerator) {
	db := testutil.NewBootstrappedDB(t)
	settings := repository.NewSettingRepository(db)
	require.NoError(t, settings.Set(domain.SettingAIAPIKey, key))
	gen := &fakeGenerator{}
	return service.NewTutorService(settings, gen, zap.NewNop()), gen
}

func TestClassify(t *testing.T) {
	cases := []struct {
		q            string
		exam, illust bool
	}{
		{"What is osmosis?", false, false},
		{"Generate a Form 2 Biology EXAM on cells", true, false},
		{"Draw the structure of a flower", false, true},
		{"Set a mock paper and include a diagram of the heart", true, true},
	}
	for _, c := range cases {
		exam, illust := service.Classify(c.q)
		assert.Equal(t, c.exam, exam, c.q)
		assert.Equal(t, c.illust, illust, c.q)
	}
}

func TestAskRequiresQuestionAndKey(t *testing.T) {
	svc, _ := newTutor(t, "")
	_, err := svc.Ask(context.Background(), service.TutorQuestion{Question: "  "})
	assert.ErrorIs(t, err, domain.ErrQuestionRequired)

	_, err = svc.Ask(context.Background(), service.TutorQuestion{Question: "What is pH?"})
	assert.ErrorIs(t, err, domain.ErrTutorNotConfigured)
	assert.False(t, svc.Configured())
}

func TestAskSettingsFailureIsExternal(t *testing.T) {
	db := testutil.NewBootstrappedDB(t)
	settings := repository.NewSettingRepository(db)
	svc := service.NewTutorService(settings, &fakeGenerator{}, zap.NewNop())

	require.NoError(t, db.Where("setting_name = ?", domain.SettingAIAPIKey).Delete(&models.SiteSetting{}).Error)
	_, err := svc.Ask(context.Background(), service.TutorQuestion{Question: "What is pH?"})
	assert.ErrorIs(t, err, domain.ErrTutorNotConfigured)

	require.NoError(t, db.Migrator().DropTable(&models.SiteSetting{}))
	_, err = svc.Ask(context.Background(), service.TutorQuestion{Question: "What is pH?"})
	assert.ErrorIs(t, err, domain.ErrExternalService)
	assert.NotErrorIs(t, err, domain.ErrTutorNotConfigured)
	assert.False(t, svc.Configured())
}

func TestAskTextOnly(t *testing.T) {
	svc, gen := newTutor(t, "sk-test")

	ans, err := svc.Ask(context.Background(), service.TutorQuestion{Question: "What is pH?"})
	require.NoError(t, err)
	assert.True(t, ans.Success)
	assert.Equal(t, "answer", ans.Response)
	assert.False(t, ans.IsExam)
	assert.False(t, ans.IsIllustration)
	assert.Nil(t, ans.ImageData)
	assert.Equal(t, "sk-test", gen.lastKey)
	assert.False(t, gen.illustrated)
}

func TestAskIllustrationReturnsBase64(t *testing.T) {
	svc, gen := newTutor(t, "sk-test")

	ans, err := svc.Ask(context.Background(), service.TutorQuestion{Question: "Draw a plant cell"})
	require.NoError(t, err)
	assert.True(t, gen.illustrated)
	require.NotNil(t, ans.ImageData)
	assert.Equal(t, "aW1n", *ans.ImageData)
}

func TestAskDownscalesAttachedImage(t *testing.T) {
	svc, gen := newTutor(t, "sk-test")
	img := image.NewRGBA(image.Rect(0, 0, 2048, 1024))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	_, err := svc.Ask(context.Background(), service.TutorQuestion{Question: "Explain this graph", Image: &buf, ImageName: "graph.png"})
	require.NoError(t, err)
	require.NotEmpty(t, gen.lastRequest.ImageJPEG)

	decoded, _, err := image.Decode(bytes.NewReader(gen.lastRequest.ImageJPEG))
	require.NoError(t, err)
	assert.Equal(t, 1024, decoded.Bounds().Dx())
	assert.Equal(t, 512, decoded.Bounds().Dy())
}

func TestAskRejectsNonImageAttachment(t *testing.T) {
	svc, _ := newTutor(t, "sk-test")
	_, err := svc.Ask(context.Background(), service.TutorQuestion{Question: "Read this", Image: strings.NewReader("x"), ImageName: "notes.pdf"})
	assert.ErrorIs(t, err, domain.ErrRejectedFormat)
}

func TestAskWrapsDownstreamFailures(t *testing.T) {
	svc, gen := newTutor(t, "sk-test")
	gen.err = errors.New("connection reset")

	_, err := svc.Ask(context.Background(), service.TutorQuestion{Question: "What is pH?"})
	assert.ErrorIs(t, err, domain.ErrExternalService)
	assert.NotContains(t, err.Error(), "connection reset")
}
