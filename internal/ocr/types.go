package ocr

import "time"

// Result is the transcription of one document image.
type Result struct {
	Text     string
	Overlay  *TextOverlay // accepted but unused by field extraction
	Duration time.Duration
}

// TextOverlay carries per-line, per-word positional metadata as returned
// by the OCR.space API.
type TextOverlay struct {
	Lines []OverlayLine `json:"Lines"`
}

type OverlayLine struct {
	LineText string        `json:"LineText"`
	Words    []OverlayWord `json:"Words"`
}

type OverlayWord struct {
	WordText string `json:"WordText"`
}

// parseResponse mirrors the OCR.space parse/image response envelope.
type parseResponse struct {
	ParsedResults []parsedResult `json:"ParsedResults"`

	IsErroredOnProcessing bool     `json:"IsErroredOnProcessing"`
	ErrorMessage          []string `json:"ErrorMessage"`
}

type parsedResult struct {
	ParsedText  string       `json:"ParsedText"`
	TextOverlay *TextOverlay `json:"TextOverlay"`
}
