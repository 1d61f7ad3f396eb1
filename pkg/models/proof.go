package models

import "strings"

type ProofKind int

const (
	ProofLink ProofKind = iota
	ProofImage
	ProofPDF
)

func (k ProofKind) String() string {
	switch k {
	case ProofImage:
		return "image"
	case ProofPDF:
		return "pdf"
	default:
		return "link"
	}
}

// ClassifyProof decides how a proof document is embedded from its literal prefix.
func ClassifyProof(proof string) ProofKind {
	switch {
	case strings.HasPrefix(proof, "data:image/"):
		return ProofImage
	case strings.HasPrefix(proof, "data:application/pdf"):
		return ProofPDF
	default:
		return ProofLink
	}
}
