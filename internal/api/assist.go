package api

import (
	"errors"
	"net/http"

	"github.com/titanx/halo-core/internal/marketing"
	"github.com/titanx/halo-core/internal/support"
)

type SupportRequest struct {
	Question     string `json:"question"`
	Endpoint     string `json:"endpoint"`
	ErrorMessage string `json:"error_message"`
	// IncludeExamples defaults to true when omitted.
	IncludeExamples *bool `json:"include_examples"`
}

func (s *Server) handleSupportAsk(w http.ResponseWriter, r *http.Request) {
	var req SupportRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Question == "" {
		writeEnvelope(w, http.StatusOK, failure(), withMsg("Invalid question: must be a non-empty string."))
		return
	}

	includeExamples := req.IncludeExamples == nil || *req.IncludeExamples
	answer := support.Ask(req.Question, req.Endpoint, req.ErrorMessage, includeExamples)

	writeEnvelope(w, http.StatusOK,
		withEvent("support_answer"),
		withData(answer),
	)
}

type MarketingRequest struct {
	UseCase     string `json:"use_case"`
	Audience    string `json:"audience"`
	Tone        string `json:"tone"`
	ProductName string `json:"product_name"`
	// IncludeVariants defaults to true when omitted.
	IncludeVariants *bool `json:"include_variants"`
}

func (s *Server) handleMarketingGenerate(w http.ResponseWriter, r *http.Request) {
	var req MarketingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	productName := req.ProductName
	if productName == "" {
		productName = s.cfg.Marketing.ProductName
	}

	copyReq := marketing.Request{
		UseCase:         req.UseCase,
		Audience:        req.Audience,
		Tone:            req.Tone,
		ProductName:     productName,
		IncludeVariants: req.IncludeVariants == nil || *req.IncludeVariants,
	}

	result, err := marketing.Generate(copyReq)
	if err != nil {
		var uve *marketing.UnsupportedValueError
		if errors.As(err, &uve) {
			writeEnvelope(w, http.StatusOK, failure(),
				withEvent("marketing_error"),
				withMsg(err.Error()),
			)
			return
		}
		writeEnvelope(w, http.StatusInternalServerError, failure(), withMsg(err.Error()))
		return
	}

	writeEnvelope(w, http.StatusOK,
		withEvent("marketing_copy"),
		withData(result),
	)
}
