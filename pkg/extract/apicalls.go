package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-schemex/pkg/schema"
)

var (
	methodOptRe  = regexp.MustCompile(`\bmethod\s*:\s*(?:"([A-Za-z]+)"|'([A-Za-z]+)')`)
	headersOptRe = regexp.MustCompile(`(?s)\bheaders\s*:\s*\{([^{}]*)\}`)
	headerPairRe = regexp.MustCompile(`(?:"([^"]+)"|'([^']+)'|([A-Za-z][\w-]*))\s*:\s*(?:"([^"]*)"|'([^']*)')`)
	bodyOptRe    = regexp.MustCompile(`\b(?:body|requestBody)\s*:`)
	stringifyRe  = regexp.MustCompile(`(?s)JSON\.stringify\s*\(\s*\{([^{}]*)\}`)
	literalRe    = regexp.MustCompile(`(?:"([^"]+)"|'([^']+)'|([A-Za-z_$][\w$]*))\s*:\s*(?:"([^"]*)"|'([^']*)'|(-?\d+(?:\.\d+)?)|(true|false)|([A-Za-z_$][\w$.]*))`)
)

// scanAPICalls collects request descriptors from the generic two-argument
// request form and the namespaced method-call family. Only literal URLs are
// recovered; template-interpolated endpoints never match and are dropped.
func (e *extractor) scanAPICalls(source string) []schema.APICall {
	var calls []schema.APICall

	for _, match := range e.patterns.RequestCall().FindAllStringSubmatch(source, -1) {
		endpoint := firstNonEmpty(match[1], match[2])
		if endpoint == "" {
			continue
		}
		call := schema.APICall{Method: "GET", Endpoint: endpoint}
		if opts := match[3]; opts != "" {
			applyRequestOptions(&call, opts)
		}
		calls = append(calls, call)
	}

	for _, match := range e.patterns.MemberCall().FindAllStringSubmatch(source, -1) {
		endpoint := firstNonEmpty(match[2], match[3])
		if endpoint == "" {
			continue
		}
		calls = append(calls, schema.APICall{
			Method:   strings.ToUpper(match[1]),
			Endpoint: endpoint,
		})
	}

	return calls
}

func applyRequestOptions(call *schema.APICall, opts string) {
	if match := methodOptRe.FindStringSubmatch(opts); match != nil {
		call.Method = strings.ToUpper(firstNonEmpty(match[1], match[2]))
	}
	if match := headersOptRe.FindStringSubmatch(opts); match != nil {
		call.Headers = parseHeaders(match[1])
	}
	if bodyOptRe.MatchString(opts) {
		call.RequestBody = parseBody(opts)
	}
}

func parseHeaders(raw string) map[string]string {
	headers := make(map[string]string)
	for _, match := range headerPairRe.FindAllStringSubmatch(raw, -1) {
		key := firstNonEmpty(match[1], match[2], match[3])
		if key == "" {
			continue
		}
		headers[key] = firstNonEmpty(match[4], match[5])
	}
	if len(headers) == 0 {
		return nil
	}
	return headers
}

// parseBody recovers a shallow shape from an inline JSON.stringify object
// literal. Literal values keep their JS type; identifier values are recorded
// as nil so the key still surfaces in the schema. Anything deeper is left to
// the inferer at build time.
func parseBody(opts string) any {
	match := stringifyRe.FindStringSubmatch(opts)
	if match == nil {
		// Body exists but its shape is not statically recoverable.
		return map[string]any{}
	}
	body := make(map[string]any)
	for _, pair := range literalRe.FindAllStringSubmatch(match[1], -1) {
		key := firstNonEmpty(pair[1], pair[2], pair[3])
		if key == "" {
			continue
		}
		switch {
		case pair[4] != "" || pair[5] != "":
			body[key] = firstNonEmpty(pair[4], pair[5])
		case pair[6] != "":
			if value, err := strconv.ParseFloat(pair[6], 64); err == nil {
				body[key] = value
			}
		case pair[7] != "":
			body[key] = pair[7] == "true"
		default:
			body[key] = nil
		}
	}
	return body
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
