package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/valpere/sareview/internal"
	"github.com/valpere/sareview/internal/docword"
	"github.com/valpere/sareview/internal/markdown"
)

const sessionCookie = "sareview_session"

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// session loads (or creates) the caller's session and refreshes the cookie.
func (s *Server) session(c *gin.Context) (string, *Session) {
	id, _ := c.Cookie(sessionCookie)
	id, sess := s.sessions.get(id)
	c.SetCookie(sessionCookie, id, 86400, "/", "", false, true)
	return id, sess
}

type generateRequest struct {
	StudentName  string `json:"student_name"`
	ClientName   string `json:"client_name"`
	DogName      string `json:"dog_name"`
	ReviewDate   string `json:"review_date"`
	ReviewerName string `json:"reviewer_name"`
	Status       string `json:"status"`
	RawNotes     string `json:"raw_notes"`
}

func (s *Server) handleGenerate(c *gin.Context) {
	if s.cfg.APIKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": internal.ErrAPIKeyMissing.Error()})
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Status != "" && !internal.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status", "field": "status"})
		return
	}

	meta := internal.AssessmentMeta{
		StudentName:  req.StudentName,
		ClientName:   req.ClientName,
		DogName:      req.DogName,
		ReviewDate:   req.ReviewDate,
		ReviewerName: req.ReviewerName,
		Status:       internal.Status(req.Status),
	}

	draft, err := s.svc.Synthesize(c.Request.Context(), meta, req.RawNotes)
	if err != nil {
		var verr *internal.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Reason, "field": verr.Field})
			return
		}
		// Service failure: the prior draft stays in the session untouched.
		s.log.Error("generation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	id, sess := s.session(c)
	sess = &Session{Meta: meta, Draft: draft, Language: "English"}

	if s.store != nil {
		reviewID, err := s.store.SaveReview(c.Request.Context(), internal.ReviewRecord{
			StudentName:  meta.StudentName,
			ClientName:   meta.ClientName,
			DogName:      meta.DogName,
			ReviewDate:   meta.ReviewDate,
			ReviewerName: meta.ReviewerName,
			Status:       meta.Status,
			RawNotes:     req.RawNotes,
			DraftText:    draft,
			Language:     "English",
		})
		if err != nil {
			s.log.Warn("failed to persist review", zap.Error(err))
		} else {
			sess.ReviewID = reviewID
		}
	}
	s.sessions.put(id, sess)

	c.JSON(http.StatusOK, gin.H{
		"draft":        draft,
		"preview_html": markdown.ToHTML([]byte(draft)),
		"review_id":    sess.ReviewID,
	})
}

type translateRequest struct {
	Draft    string `json:"draft"`
	Language string `json:"language"`
}

func (s *Server) handleTranslate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, sess := s.session(c)

	// The edited draft from the form is authoritative over whatever the
	// session last stored.
	draft := req.Draft
	if draft == "" {
		draft = sess.Draft
	}
	if draft == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to translate", "field": "draft"})
		return
	}

	lang := internal.Language(req.Language)
	if !lang.Supported() {
		// Explicit no-op, not an error: unchanged text, no external call.
		c.JSON(http.StatusOK, gin.H{
			"draft":        draft,
			"language":     sess.Language,
			"preview_html": markdown.ToHTML([]byte(draft)),
			"translated":   false,
		})
		return
	}

	if s.cfg.APIKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": internal.ErrAPIKeyMissing.Error()})
		return
	}

	// Re-translating an unedited draft is served from memory.
	if s.store != nil {
		if cached, found, err := s.store.GetCachedTranslation(c.Request.Context(), draft, string(lang)); err == nil && found {
			s.finishTranslate(c, id, sess, cached, lang)
			return
		}
	}

	var glossary map[string]string
	if s.store != nil {
		if terms, err := s.store.GetGlossaryTerms(c.Request.Context(), string(lang)); err == nil {
			glossary = terms
		}
	}

	translated, err := s.svc.Translate(c.Request.Context(), draft, lang, glossary)
	if err != nil {
		// The prior draft stays in the session untouched.
		s.log.Error("translation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	if s.val != nil {
		if ok, verr := s.val.IsValid(translated, lang); !ok {
			s.log.Warn("translation language check failed", zap.Error(verr))
		}
	}
	if s.store != nil {
		if err := s.store.SaveTranslation(c.Request.Context(), draft, string(lang), translated, "llm"); err != nil {
			s.log.Warn("failed to persist translation", zap.Error(err))
		}
	}

	s.finishTranslate(c, id, sess, translated, lang)
}

// finishTranslate publishes the translated draft. The old session value is
// never mutated: concurrent handlers holding it keep reading a consistent
// snapshot, and a fresh value replaces it in the registry.
func (s *Server) finishTranslate(c *gin.Context, id string, prev *Session, translated string, lang internal.Language) {
	sess := &Session{
		ReviewID: prev.ReviewID,
		Meta:     prev.Meta,
		Draft:    translated,
		Language: string(lang),
	}
	s.sessions.put(id, sess)

	if s.store != nil && sess.ReviewID != "" {
		if err := s.store.UpdateReviewDraft(c.Request.Context(), sess.ReviewID, translated, string(lang)); err != nil {
			s.log.Warn("failed to update review draft", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"draft":        translated,
		"language":     string(lang),
		"preview_html": markdown.ToHTML([]byte(translated)),
		"translated":   true,
	})
}

type documentRequest struct {
	Draft string `json:"draft"`
}

func (s *Server) handleDocument(c *gin.Context) {
	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	_, sess := s.session(c)

	draft := req.Draft
	if draft == "" {
		draft = sess.Draft
	}
	if sess.Meta.StudentName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "generate a review first", "field": "student_name"})
		return
	}

	data, err := docword.Assemble(sess.Meta, draft)
	if err != nil {
		// Serialization failure does not corrupt the in-memory draft.
		s.log.Error("document assembly failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := docword.Filename(sess.Meta.StudentName)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, docxMIME, data)
}

func (s *Server) handleHistory(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusOK, gin.H{"reviews": []interface{}{}})
		return
	}

	records, err := s.store.ListReviews(c.Request.Context(), 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	type item struct {
		ID          string `json:"id"`
		StudentName string `json:"student_name"`
		Status      string `json:"status"`
		Language    string `json:"language"`
		ReviewDate  string `json:"review_date"`
		Excerpt     string `json:"excerpt"`
	}
	items := make([]item, 0, len(records))
	for _, rec := range records {
		items = append(items, item{
			ID:          rec.ID,
			StudentName: rec.StudentName,
			Status:      string(rec.Status),
			Language:    rec.Language,
			ReviewDate:  rec.ReviewDate,
			Excerpt:     markdown.Excerpt(rec.DraftText, 120),
		})
	}
	c.JSON(http.StatusOK, gin.H{"reviews": items})
}
