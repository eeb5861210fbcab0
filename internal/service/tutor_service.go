package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"schoolsite/internal/domain"
	"schoolsite/internal/repository"
	"schoolsite/internal/storage"
	"schoolsite/pkg/llm"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

var examIndicators = []string{
	"exam", "test paper", "past paper", "mock", "quiz",
	"revision questions", "practice questions", "set questions", "marking scheme",
}

var illustrationIndicators = []string{
	"draw", "illustrate", "illustration", "diagram", "sketch",
	"picture of", "image of", "show me",
}

const (
	tutorSystemPrompt = "You are a patient tutor for Kenyan secondary school students (Form 1 to Form 4). " +
		"Explain step by step using the KCSE syllabus."
	examSystemPrompt = "You are an experienced KCSE examiner. Produce a well structured exam with numbered " +
		"questions, marks per question and a marking scheme at the end."
	maxImageSide = 1024
)

// TutorQuestion is one submission. Image is optional.
type TutorQuestion struct {
	Question  string
	Image     io.Reader
	ImageName string
}

type TutorAnswer struct {
	Success        bool    `json:"success"`
	Response       string  `json:"response"`
	IsExam         bool    `json:"is_exam"`
	IsIllustration bool    `json:"is_illustration"`
	ImageData      *string `json:"image_data"`
}

type TutorService struct {
	settings *repository.SettingRepository
	gen      llm.Generator
	log      *zap.Logger
}

func NewTutorService(settings *repository.SettingRepository, gen llm.Generator, log *zap.Logger) *TutorService {
	return &TutorService{settings: settings, gen: gen, log: log}
}

// Configured reports whether an API key is stored.
func (s *TutorService) Configured() bool {
	key, err := s.apiKey()
	return err == nil && key != ""
}

// apiKey reads the stored key. A missing row means no key.
func (s *TutorService) apiKey() (string, error) {
	v, err := s.settings.Get(domain.SettingAIAPIKey)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(v), nil
}

// Classify reports whether a question asks for an exam and/or an illustration.
func Classify(question string) (isExam, isIllustration bool) {
	q := strings.ToLower(question)
	return containsAny(q, examIndicators), containsAny(q, illustrationIndicators)
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// Ask answers a question. Client errors are domain.ErrQuestionRequired,
// domain.ErrTutorNotConfigured and domain.ErrRejectedFormat; every failure of
// the model or image pipeline is wrapped in domain.ErrExternalService.
func (s *TutorService) Ask(ctx context.Context, in TutorQuestion) (*TutorAnswer, error) {
	question := strings.TrimSpace(in.Question)
	if question == "" {
		return nil, domain.ErrQuestionRequired
	}
	key, err := s.apiKey()
	if err != nil {
		return nil, s.external("settings lookup", err)
	}
	if key == "" {
		return nil, domain.ErrTutorNotConfigured
	}

	var jpeg []byte
	if in.Image != nil {
		if !storage.Allowed(in.ImageName, storage.Image) {
			return nil, domain.ErrRejectedFormat
		}
		jpeg, err = downscale(in.Image)
		if err != nil {
			return nil, s.external("image preprocessing", err)
		}
	}

	isExam, isIllustration := Classify(question)
	system := tutorSystemPrompt
	if isExam {
		system = examSystemPrompt
	}

	text, err := s.gen.Complete(ctx, key, llm.Request{System: system, Prompt: question, ImageJPEG: jpeg})
	if err != nil {
		return nil, s.external("completion", err)
	}
	answer := &TutorAnswer{
		Success:        true,
		Response:       text,
		IsExam:         isExam,
		IsIllustration: isIllustration,
	}
	if isIllustration {
		img, err := s.gen.Illustrate(ctx, key, "Clear, labelled educational illustration for secondary school students: "+question)
		if err != nil {
			return nil, s.external("illustration", err)
		}
		encoded := base64.StdEncoding.EncodeToString(img)
		answer.ImageData = &encoded
	}
	return answer, nil
}

func (s *TutorService) external(stage string, err error) error {
	s.log.Error("tutor request failed", zap.String("stage", stage), zap.Error(err))
	return fmt.Errorf("%w: %s", domain.ErrExternalService, stage)
}

// downscale decodes an uploaded image, fits it within maxImageSide and re-encodes as JPEG.
func downscale(r io.Reader) ([]byte, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	img = imaging.Fit(img, maxImageSide, maxImageSide, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, err
	}
	if buf.Len() == 0 {
		return nil, errors.New("empty image")
	}
	return buf.Bytes(), nil
}
