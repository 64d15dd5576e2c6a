package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	searcherrors "github.com/pkgsearch/search-core/internal/errors"
	"github.com/pkgsearch/search-core/internal/searchform"
	"github.com/pkgsearch/search-core/services"
)

// SearchHitResponse is the JSON shape of a single hit.
type SearchHitResponse struct {
	DocumentID string  `json:"document_id"`
	Score      float64 `json:"score"`
}

// SearchResponse is the JSON shape GET /packages renders.
type SearchResponse struct {
	Hits     []SearchHitResponse `json:"hits"`
	Total    int                 `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
	TookMs   int64               `json:"took_ms"`
	QueryID  string              `json:"query_id"`
}

// SearchHandler binds URL query parameters to a search form, runs it
// through the search service, and renders the ranked result.
func (api *API) SearchHandler(c *gin.Context) {
	fieldCollection := api.fieldCollection

	// sort defaulting to relevance and ignoring of unknown sort values
	// happens inside searchform.Parse; a malformed page is an error, not a
	// default.
	form, err := searchform.Parse(searchform.Regular, map[string]string{
		"q":    c.Query("q"),
		"page": c.Query("page"),
		"sort": c.Query("sort"),
	})
	if err != nil {
		var paginationErr *searcherrors.PaginationError
		if errors.As(err, &paginationErr) {
			SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
			return
		}
		SendInternalError(c, "search", err)
		return
	}

	serviceQuery := form.ToServiceQuery()
	start := time.Now()
	result, err := api.searcher.Search(services.SearchQuery{
		FieldCollection: fieldCollection,
		Q:               serviceQuery.Q,
		Tags:            serviceQuery.Tags,
		Offset:          serviceQuery.Offset,
		Limit:           serviceQuery.Limit,
		Sort:            string(serviceQuery.Sort),
	})
	if api.metrics != nil {
		api.metrics.ObserveSearch(string(serviceQuery.Sort), outcomeFor(result, err), time.Since(start).Seconds())
	}
	if err != nil {
		var notFound *searcherrors.FieldCollectionNotFoundError
		if errors.As(err, &notFound) {
			SendFieldCollectionNotFoundError(c, fieldCollection)
			return
		}
		var corpusErr *searcherrors.CorpusUnavailableError
		if errors.As(err, &corpusErr) {
			SendCorpusUnavailableError(c, err)
			return
		}
		var paginationErr *searcherrors.PaginationError
		if errors.As(err, &paginationErr) {
			SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
			return
		}
		SendInternalError(c, "search", err)
		return
	}

	hits := make([]SearchHitResponse, 0, len(result.Hits))
	for _, h := range result.Hits {
		hits = append(hits, SearchHitResponse{DocumentID: h.DocumentID, Score: h.Score})
	}

	c.JSON(http.StatusOK, SearchResponse{
		Hits:     hits,
		Total:    result.Total,
		Page:     result.Page,
		PageSize: result.PageSize,
		TookMs:   result.Took,
		QueryID:  result.QueryID,
	})
}

func outcomeFor(result services.SearchResult, err error) string {
	if err != nil {
		return "error"
	}
	if result.Total == 0 {
		return "empty"
	}
	return "ok"
}

// RebuildRequest is an optional JSON body naming who asked for a rebuild
// and why, recorded for the operator audit trail. An empty or absent body
// is valid; Reason is capped to keep log lines readable.
type RebuildRequest struct {
	RequestedBy string `json:"requested_by" binding:"omitempty,max=100"`
	Reason      string `json:"reason" binding:"omitempty,max=200"`
}

// RebuildHandler forces a corpus resnapshot and index rebuild for the named
// field collection.
func (api *API) RebuildHandler(c *gin.Context) {
	fieldCollection := api.fieldCollection

	var req RebuildRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "invalid rebuild request body: "+err.Error())
			return
		}
	}
	if req.RequestedBy != "" || req.Reason != "" {
		log.Printf("rebuild of %q requested by %q: %s", fieldCollection, req.RequestedBy, req.Reason)
	}

	generation, err := api.rebuilder.Rebuild(fieldCollection)
	if err != nil {
		var notFound *searcherrors.FieldCollectionNotFoundError
		if errors.As(err, &notFound) {
			SendFieldCollectionNotFoundError(c, fieldCollection)
			return
		}
		var corpusErr *searcherrors.CorpusUnavailableError
		if errors.As(err, &corpusErr) {
			SendCorpusUnavailableError(c, err)
			return
		}
		SendInternalError(c, "rebuild", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"field_collection": fieldCollection, "generation": generation})
}
