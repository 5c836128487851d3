package document

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	apperr "github.com/ptquang2000/voice-summarizer/internal/errors"
	"github.com/ptquang2000/voice-summarizer/internal/summarize"
)

const (
	fontName = "Times New Roman"
	fontSize = 12
	docTitle = "Voice Recording Summary"
)

var (
	reBold   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet = regexp.MustCompile(`^[•\-\*]\s+(.+)$`)
)

// Assemble builds the output document: title, generation metadata, the
// summary, then the full transcript.
func (a *implAssembler) Assemble(ctx context.Context, transcript, summary string, cfg summarize.Config, outPath string) (string, error) {
	a.logger.Info(ctx, "Assembling document: %s", outPath)

	doc, err := godocx.NewDocument()
	if err != nil {
		return "", apperr.Wrap(err, apperr.KindAssembly, "create document")
	}

	addStyledRun(doc.AddParagraph(""), docTitle, true, 18)
	doc.AddParagraph("")

	addMetadata(doc, cfg)
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "Summary", true, 15)
	addBody(doc, summary)
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "Transcription", true, 15)
	addBody(doc, transcript)
	doc.AddParagraph("")

	footer := doc.AddParagraph("")
	footer.AddText("Generated by Voice Summarizer").Font(fontName).Size(10).Color("808080")

	if err := doc.SaveTo(outPath); err != nil {
		return "", apperr.Wrapf(err, apperr.KindAssembly, "save document to %s", outPath)
	}

	a.logger.Info(ctx, "Document assembled: %s", outPath)
	return outPath, nil
}

func addMetadata(doc *docx.RootDoc, cfg summarize.Config) {
	meta := []string{
		fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04")),
		fmt.Sprintf("Summary Length: %s", cfg.Length),
		fmt.Sprintf("Summary Style: %s", cfg.Style),
		fmt.Sprintf("Focus Area: %s", cfg.Focus),
	}
	for _, line := range meta {
		p := doc.AddParagraph("")
		p.AddText(line).Font(fontName).Size(10).Color("606060")
	}
}

// addBody renders text line by line, honoring the post-processor's
// lightweight markup: bullet lines and **bold** spans.
func addBody(doc *docx.RootDoc, text string) {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			p := doc.AddParagraph("")
			addRichText(p, "• "+m[1])
			continue
		}

		p := doc.AddParagraph("")
		addRichText(p, trimmed)
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(stripInlineMarkup(text)).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

// addRichText splits a line on **bold** spans and emits alternating
// regular and bold runs.
func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(stripInlineMarkup(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(stripInlineMarkup(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func stripInlineMarkup(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
