package rest

import (
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/heartmarshall/studyquest-backend/internal/app/cardimport"
	"github.com/heartmarshall/studyquest-backend/internal/domain"
	"github.com/heartmarshall/studyquest-backend/internal/service/study"
)

const maxUploadBytes = 10 << 20

// cardService defines the minimal interface needed by CardHandler.
type cardService interface {
	ImportCards(ctx context.Context, input study.ImportCardsInput) (int, error)
}

// CardHandler serves bulk card import. Everything else about cards goes
// through GraphQL; file uploads stay on REST.
type CardHandler struct {
	svc cardService
	log *slog.Logger
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(svc cardService, logger *slog.Logger) *CardHandler {
	return &CardHandler{svc: svc, log: logger.With("handler", "card")}
}

type cardRequest struct {
	Front      string   `json:"front"`
	Back       string   `json:"back"`
	Notes      string   `json:"notes"`
	Subject    string   `json:"subject"`
	Difficulty string   `json:"difficulty"`
	Tags       []string `json:"tags"`
}

func (c cardRequest) input() study.CreateCardInput {
	return study.CreateCardInput{
		Front:      c.Front,
		Back:       c.Back,
		Notes:      c.Notes,
		Subject:    c.Subject,
		Difficulty: domain.Difficulty(c.Difficulty),
		Tags:       c.Tags,
	}
}

type importRequest struct {
	Cards []cardRequest `json:"cards"`
}

type importRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type importResponse struct {
	Imported int              `json:"imported"`
	Skipped  []importRowError `json:"skipped"`
}

// Import handles POST /api/v1/cards/import. It accepts either a JSON body
// {"cards": [...]} or a multipart upload with a "file" field holding an
// .xlsx or .csv sheet (optional "sheet" field). Invalid sheet rows are
// skipped and reported; the valid rest is imported in one batch.
func (h *CardHandler) Import(w http.ResponseWriter, r *http.Request) {
	var (
		inputs  []study.CreateCardInput
		skipped = []importRowError{}
	)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		res, err := h.parseUpload(w, r)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		inputs = res.Cards
		for _, re := range res.Errors {
			skipped = append(skipped, importRowError{Row: re.Row, Message: re.Err.Error()})
		}
		if len(inputs) == 0 {
			writeJSON(w, http.StatusBadRequest, importResponse{Skipped: skipped})
			return
		}
	} else {
		var req importRequest
		if err := decodeJSON(w, r, &req); err != nil {
			handleError(h.log, w, r, err)
			return
		}
		for _, c := range req.Cards {
			inputs = append(inputs, c.input())
		}
	}

	n, err := h.svc.ImportCards(r.Context(), study.ImportCardsInput{Cards: inputs})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, importResponse{Imported: n, Skipped: skipped})
}

func (h *CardHandler) parseUpload(w http.ResponseWriter, r *http.Request) (*cardimport.Result, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, domain.NewValidationError("file", "invalid multipart upload")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, domain.NewValidationError("file", "required")
	}
	defer file.Close()

	format, err := cardimport.FormatFromFilename(header.Filename)
	if err != nil {
		return nil, domain.NewValidationError("file", "must be .xlsx or .csv")
	}

	res, err := cardimport.Parse(file, format, r.FormValue("sheet"))
	if err != nil {
		if errors.Is(err, cardimport.ErrUnsupportedFormat) {
			return nil, domain.NewValidationError("file", "must be .xlsx or .csv")
		}
		return nil, domain.NewValidationError("file", "unreadable: "+err.Error())
	}

	h.log.InfoContext(r.Context(), "card file parsed",
		slog.String("file", header.Filename),
		slog.Int("rows_ok", len(res.Cards)),
		slog.Int("rows_rejected", len(res.Errors)),
	)
	return res, nil
}
