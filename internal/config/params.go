package config

import (
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"
)

// Query parameter names, shared with the web page this screen mirrors.
const (
	ParamTitle      = "title"
	ParamStartDate  = "startDate"
	ParamEndDate    = "endDate"
	ParamMessages   = "messages"
	ParamFooterText = "footerText"
	ParamFooterURL  = "footerUrl"
)

// ApplyParams returns a copy of cfg with URL-style overrides applied. raw may
// be a full URL, a "?"-prefixed query, or a bare query string. Malformed
// values never fail: a bad date keeps the current value and a bad message
// list falls back to DefaultMessages.
func ApplyParams(cfg *Config, raw string) *Config {
	out := cfg.Clone()

	// ParseQuery skips a malformed pair but keeps every pair it could read.
	values, err := parseQuery(raw)
	if err != nil {
		slog.Warn("skipping unparsable param", "err", err)
	}

	if v := values.Get(ParamTitle); v != "" {
		out.Title = v
	}
	if v := values.Get(ParamStartDate); v != "" {
		if t, err := ParseDate(v); err == nil {
			out.StartDate = t
		} else {
			slog.Warn("invalid startDate param", "value", v, "err", err)
		}
	}
	if v := values.Get(ParamEndDate); v != "" {
		if t, err := ParseDate(v); err == nil {
			out.EndDate = t
		} else {
			slog.Warn("invalid endDate param", "value", v, "err", err)
		}
	}
	if values.Has(ParamMessages) {
		out.Messages = parseMessages(values.Get(ParamMessages))
	}
	if values.Has(ParamFooterText) {
		out.FooterText = values.Get(ParamFooterText)
	}
	if values.Has(ParamFooterURL) {
		out.FooterURL = values.Get(ParamFooterURL)
	}
	return out
}

func parseQuery(raw string) (url.Values, error) {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		raw = raw[i+1:]
	}
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	return url.ParseQuery(raw)
}

// parseMessages decodes a JSON array of strings. Anything else, including an
// empty array, yields the default sequence.
func parseMessages(s string) []string {
	var msgs []string
	if err := json.Unmarshal([]byte(s), &msgs); err != nil || len(msgs) == 0 {
		slog.Warn("invalid messages param, using defaults", "value", s)
		return append([]string(nil), DefaultMessages...)
	}
	return msgs
}

// EncodeParams renders cfg as a query string that ApplyParams reads back.
func EncodeParams(cfg *Config) string {
	msgs, _ := json.Marshal(cfg.Messages)
	values := url.Values{}
	values.Set(ParamTitle, cfg.Title)
	values.Set(ParamStartDate, FormatDate(cfg.StartDate))
	values.Set(ParamEndDate, FormatDate(cfg.EndDate))
	values.Set(ParamMessages, string(msgs))
	if cfg.FooterText != "" {
		values.Set(ParamFooterText, cfg.FooterText)
	}
	if cfg.FooterURL != "" {
		values.Set(ParamFooterURL, cfg.FooterURL)
	}
	return values.Encode()
}
