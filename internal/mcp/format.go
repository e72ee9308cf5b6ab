package mcp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bobmcallan/airflow-mcp/internal/airflow"
)

// LinkKind selects which Airflow UI page a ui_url points at.
type LinkKind int

const (
	LinkNone LinkKind = iota
	LinkDAG
	LinkDAGRun
	LinkTaskInstance
)

// Link configures ui_url augmentation. With a Collection, every element of
// that array gets a link; otherwise the top-level object does.
type Link struct {
	Kind       LinkKind
	Collection string
}

// Format renders an Airflow response as the text of a tool result.
func Format(ct CatalogTool, call *Call, resp *airflow.Response, uiBase string) (string, error) {
	body := bytes.TrimSpace(resp.Body)
	if len(body) == 0 {
		return confirmation(ct, call, resp.StatusCode), nil
	}

	// Plain text bodies (task logs, DAG source) pass through untouched.
	if resp.ContentType != "" && !resp.IsJSON() {
		return string(resp.Body), nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil || dec.More() {
		return string(resp.Body), nil
	}

	if ct.Link.Kind != LinkNone {
		augment(doc, ct.Link, call.Args, uiBase)
	}

	// ui_url query strings and Airflow text (notes, SQL, extras) keep & < > literal.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("failed to render %s response: %w", ct.Name, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// augment adds ui_url fields in place. Elements of a collection resolve ids
// from themselves before the call arguments; a single object resolves ids from
// the arguments first.
func augment(doc any, link Link, args map[string]any, uiBase string) {
	obj, ok := doc.(map[string]any)
	if !ok {
		return
	}

	if link.Collection == "" {
		if u := uiURL(link.Kind, uiBase, args, obj); u != "" {
			obj["ui_url"] = u
		}
		return
	}

	items, ok := obj[link.Collection].([]any)
	if !ok {
		return
	}
	for _, item := range items {
		elem, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if u := uiURL(link.Kind, uiBase, elem, args); u != "" {
			elem["ui_url"] = u
		}
	}
}

func uiURL(kind LinkKind, uiBase string, primary, secondary map[string]any) string {
	dagID := lookupID("dag_id", primary, secondary)
	if dagID == "" {
		return ""
	}
	switch kind {
	case LinkDAG:
		return airflow.DAGURL(uiBase, dagID)
	case LinkDAGRun:
		runID := lookupID("dag_run_id", primary, secondary)
		if runID == "" {
			return ""
		}
		return airflow.DAGRunURL(uiBase, dagID, runID)
	case LinkTaskInstance:
		runID := lookupID("dag_run_id", primary, secondary)
		taskID := lookupID("task_id", primary, secondary)
		if runID == "" || taskID == "" {
			return ""
		}
		return airflow.TaskInstanceURL(uiBase, dagID, runID, taskID)
	}
	return ""
}

func lookupID(key string, sources ...map[string]any) string {
	for _, src := range sources {
		if s, ok := src[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// confirmation renders the message for an empty (usually 204) response.
func confirmation(ct CatalogTool, call *Call, status int) string {
	if ct.Confirm == "" {
		return fmt.Sprintf("%s completed (HTTP %d)", ct.Name, status)
	}
	msg := ct.Confirm
	for name, v := range call.Args {
		if v == nil {
			continue
		}
		msg = strings.ReplaceAll(msg, "{"+name+"}", scalarString(v))
	}
	return msg
}
