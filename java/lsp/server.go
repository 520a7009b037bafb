// Package lsp serves the formatter over the Language Server Protocol.
package lsp

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/dhamidi/lst/java/style"
)

const lsName = "lst"

var log = commonlog.GetLogger("lst.lsp")

type Server struct {
	handler   protocol.Handler
	server    *server.Server
	version   string
	styles    style.NamedStyles
	documents *documents
}

// NewServer returns a server that formats with styles unless the client
// overrides the indentation in a request.
func NewServer(version string, styles style.NamedStyles) *Server {
	ls := &Server{
		version:   version,
		styles:    styles,
		documents: newDocuments(),
	}

	ls.handler = protocol.Handler{
		Initialize:                  ls.initialize,
		Initialized:                 ls.initialized,
		Shutdown:                    ls.shutdown,
		SetTrace:                    ls.setTrace,
		TextDocumentDidOpen:         ls.textDocumentDidOpen,
		TextDocumentDidChange:       ls.textDocumentDidChange,
		TextDocumentDidClose:        ls.textDocumentDidClose,
		TextDocumentDidSave:         ls.textDocumentDidSave,
		TextDocumentFormatting:      ls.textDocumentFormatting,
		TextDocumentRangeFormatting: ls.textDocumentRangeFormatting,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.DocumentFormattingProvider = true
	capabilities.DocumentRangeFormattingProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Infof("initialized with style %s", ls.styles.Name)
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.documents.put(params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.documents.put(params.TextDocument.URI, whole.Text)
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.documents.remove(params.TextDocument.URI)
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.documents.put(params.TextDocument.URI, *params.Text)
	}
	return nil
}

func (ls *Server) textDocumentFormatting(ctx *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	text, ok := ls.documents.get(params.TextDocument.URI)
	if !ok {
		log.Warningf("formatting unknown document %s", params.TextDocument.URI)
		return nil, nil
	}
	formatted, err := formatText(text, documentPath(params.TextDocument.URI), ls.stylesFor(params.Options), -1)
	if err != nil {
		// the document does not parse; leave it alone
		log.Debugf("%s: %s", params.TextDocument.URI, err)
		return []protocol.TextEdit{}, nil
	}
	return textEdits(text, formatted), nil
}

func (ls *Server) textDocumentRangeFormatting(ctx *glsp.Context, params *protocol.DocumentRangeFormattingParams) ([]protocol.TextEdit, error) {
	text, ok := ls.documents.get(params.TextDocument.URI)
	if !ok {
		log.Warningf("formatting unknown document %s", params.TextDocument.URI)
		return nil, nil
	}
	end := offsetOf(text, params.Range.End)
	formatted, err := formatText(text, documentPath(params.TextDocument.URI), ls.stylesFor(params.Options), end)
	if err != nil {
		log.Debugf("%s: %s", params.TextDocument.URI, err)
		return []protocol.TextEdit{}, nil
	}
	return textEdits(text, formatted), nil
}

// stylesFor applies the client's tab settings on top of the server styles.
func (ls *Server) stylesFor(opts protocol.FormattingOptions) style.NamedStyles {
	tabs, ok := style.Find[style.TabsAndIndentsStyle](ls.styles)
	if !ok {
		tabs = style.DefaultTabsAndIndents()
	}
	changed := false
	if size, ok := intOption(opts[protocol.FormattingOptionTabSize]); ok && size > 0 {
		tabs.TabSize = size
		tabs.IndentSize = size
		tabs.ContinuationIndent = 2 * size
		changed = true
	}
	if spaces, ok := opts[protocol.FormattingOptionInsertSpaces].(bool); ok {
		tabs.UseTabCharacter = !spaces
		changed = true
	}
	if !changed {
		return ls.styles
	}
	return ls.styles.With(tabs)
}

func intOption(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case uint32:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func documentPath(uri string) string {
	path, err := uriToPath(uri)
	if err != nil {
		return uri
	}
	return path
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
