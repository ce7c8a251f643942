package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"prospekt/internal/brochure"
	"prospekt/internal/generate"
	"prospekt/internal/logging"
	"prospekt/internal/store"
)

// DocumentGenerator is the slice of the generation engine the HTTP surface
// needs. Tests substitute a fake.
type DocumentGenerator interface {
	GenerateSection(ctx context.Context, input generate.Input) (brochure.Document, error)
	ExpandDocument(ctx context.Context, partial map[string]any, hint string) (brochure.Document, error)
}

// BrochureHandler serves the document exchange and generation endpoints.
type BrochureHandler struct {
	store store.Store
	gen   DocumentGenerator
	log   *logging.Logger
}

func NewBrochureHandler(st store.Store, gen DocumentGenerator, log *logging.Logger) *BrochureHandler {
	return &BrochureHandler{store: st, gen: gen, log: log}
}

// SaveData validates the posted document (any subset; defaults fill the
// rest) and persists the validated full document under a fresh share key.
func (h *BrochureHandler) SaveData(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		respondError(c, http.StatusBadRequest, "request body must be a JSON object")
		return
	}

	doc, verr := brochure.Validate(raw)
	if verr != nil {
		respondValidationError(c, http.StatusBadRequest, "document failed validation", verr.Fields)
		return
	}

	key := store.NewKey()
	if err := h.store.Save(c.Request.Context(), key, brochure.ToMap(doc)); err != nil {
		h.log.Error("failed to persist document", "key", key, "error", err)
		respondError(c, http.StatusInternalServerError, "failed to persist document")
		return
	}

	h.log.Info("document saved", "key", key)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"dataKey": key,
		"loadUrl": "/?dataKey=" + key,
	})
}

// LoadData retrieves a previously saved document by its share key.
func (h *BrochureHandler) LoadData(c *gin.Context) {
	key := c.Query("dataKey")
	if key == "" {
		respondError(c, http.StatusBadRequest, "dataKey query parameter is required")
		return
	}

	doc, err := h.store.Load(c.Request.Context(), key)
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, http.StatusNotFound, "no document under this key")
		return
	}
	if err != nil {
		h.log.Error("failed to load document", "key", key, "error", err)
		respondError(c, http.StatusInternalServerError, "failed to load document")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": doc})
}

type generateRequest struct {
	ExistingData map[string]any       `json:"existingData"`
	Section      brochure.SectionName `json:"sectionToGenerate"`
	Fields       []string             `json:"fieldsToGenerate"`
	PromptHint   string               `json:"promptHint"`
	Mode         string               `json:"mode"`
}

// Generate runs a targeted rewording pass over the posted document, or a
// full expand pass when mode is "expand".
func (h *BrochureHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "request body must be a JSON object")
		return
	}
	if req.ExistingData == nil {
		req.ExistingData = map[string]any{}
	}

	var (
		doc brochure.Document
		err error
	)
	if req.Mode == "expand" {
		doc, err = h.gen.ExpandDocument(c.Request.Context(), req.ExistingData, req.PromptHint)
	} else {
		var existing brochure.Document
		var verr *brochure.ValidationError
		existing, verr = brochure.Validate(req.ExistingData)
		if verr != nil {
			respondValidationError(c, http.StatusBadRequest, "existingData failed validation", verr.Fields)
			return
		}
		doc, err = h.gen.GenerateSection(c.Request.Context(), generate.Input{
			Existing: existing,
			Section:  req.Section,
			Fields:   req.Fields,
			Hint:     req.PromptHint,
		})
	}

	if err != nil {
		h.respondGenerateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": brochure.ToMap(doc)})
}

func (h *BrochureHandler) respondGenerateError(c *gin.Context, err error) {
	var unrecoverable *generate.UnrecoverableError
	var verr *brochure.ValidationError
	switch {
	case errors.Is(err, generate.ErrSectionBusy):
		respondError(c, http.StatusConflict, err.Error())
	case errors.As(err, &unrecoverable):
		respondValidationError(c, http.StatusUnprocessableEntity,
			"generated content failed validation", unrecoverable.Validation.Fields)
	case errors.Is(err, generate.ErrGenerationFailed):
		h.log.Error("generation failed", "error", err)
		respondError(c, http.StatusBadGateway, "content generation failed")
	case errors.As(err, &verr):
		respondValidationError(c, http.StatusBadRequest, "existingData failed validation", verr.Fields)
	default:
		respondError(c, http.StatusBadRequest, err.Error())
	}
}
