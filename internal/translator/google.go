package translator

import (
	"context"
	"fmt"
	"time"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"

	"github.com/valpere/sareview/internal"
	"github.com/valpere/sareview/internal/header"
	"github.com/valpere/sareview/internal/placeholder"
)

// GoogleService translates through Google Cloud Translate. A machine
// translator cannot be told to leave the section headers alone, so the
// headers and preserved terminology are swapped for [PHn] placeholders
// before the call and restored afterwards.
type GoogleService struct {
	credentials string
}

// NewGoogleService creates the service. credentials is an optional path to a
// service-account file; when empty, ambient application-default credentials
// are used.
func NewGoogleService(credentials string) *GoogleService {
	return &GoogleService{credentials: credentials}
}

func (s *GoogleService) Name() string {
	return "google"
}

// languageTag maps a review language to its BCP 47 tag.
func languageTag(lang internal.Language) (language.Tag, error) {
	switch lang {
	case internal.LanguageFrench:
		return language.French, nil
	case internal.LanguageDutch:
		return language.Dutch, nil
	}
	return language.Und, fmt.Errorf("unsupported target language: %s", lang)
}

func (s *GoogleService) Translate(ctx context.Context, req Request) (*Result, error) {
	result := &Result{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	target, err := languageTag(req.TargetLanguage)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}

	protected, markers := placeholder.Protect(req.Text)

	opts := []option.ClientOption{}
	if s.credentials != "" {
		opts = append(opts, option.WithCredentialsFile(s.credentials))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create client: %v", err)
		return result, fmt.Errorf("failed to create client: %v", err)
	}
	defer client.Close()

	translations, err := client.Translate(ctx, []string{protected}, target, &translate.Options{
		Source: language.English,
		Format: translate.Text,
	})
	if err != nil {
		result.Error = fmt.Sprintf("translation failed: %v", err)
		return result, fmt.Errorf("translation failed: %v", err)
	}
	if len(translations) == 0 {
		result.Error = "no translation returned"
		return result, fmt.Errorf("no translation returned")
	}

	restored := placeholder.Restore(translations[0].Text, markers)
	if missing := placeholder.Validate(translations[0].Text, markers); len(missing) > 0 {
		// The MT engine dropped some markers; the normalizer below is the
		// remaining line of defense for the headers among them.
		result.Error = fmt.Sprintf("%d placeholders lost in translation", len(missing))
	}

	result.TranslatedText = header.Normalize(restored)
	return result, nil
}
