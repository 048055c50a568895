package translate

import (
	"fmt"
	"strings"
)

// systemPrompt instructs LLM-backed services to translate text while leaving
// markdown structure, URLs and placeholder tokens untouched.
const systemPrompt = "You are an expert translator specialized in technical documentation. " +
	"Your task is to translate markdown content while perfectly preserving ALL markdown formatting and structure. " +
	"\n\nRULES TO STRICTLY FOLLOW:" +
	"\n1. Keep all headers (# Heading) with the exact same level" +
	"\n2. Preserve all bullet points and numbered lists with their original indentation" +
	"\n3. Keep all hyperlinks in format [text](url) - translate only the text part, NOT the URL" +
	"\n4. Keep all images in format ![alt text](url) - translate only the alt text part" +
	"\n5. Keep all blockquotes (lines starting with >) with their original nesting level" +
	"\n6. Preserve all inline formatting: **bold**, *italic*, `code`, ~~strikethrough~~" +
	"\n7. Keep all tables with their original structure, including | and - characters" +
	"\n8. Preserve all horizontal rules (---)" +
	"\n9. Keep all line breaks, including trailing double spaces for forced line breaks" +
	"\n10. DO NOT add or remove any markdown elements or structure" +
	"\n11. DO NOT translate content inside placeholders marked as CODEBLOCK_X_PLACEHOLDER" +
	"\n12. ALWAYS maintain the exact same document structure" +
	"\n13. ALWAYS end the translated content with blank line" +
	"\n\nThis is critically important documentation that must maintain its exact structure."

// userPrompt wraps the protected content with the translation request.
func userPrompt(content, sourceLang, targetLang string) string {
	return fmt.Sprintf(
		"Translate the following markdown content from %s to %s. "+
			"Remember to follow ALL the rules about preserving markdown formatting:\n\n%s",
		strings.ToUpper(sourceLang), strings.ToUpper(targetLang), content)
}
