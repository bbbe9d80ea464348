package xmlreader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, xml string) []Event {
	t.Helper()
	r := New(strings.NewReader(xml))
	defer r.Close()
	var events []Event
	for {
		ev, ok := r.Next()
		if !ok {
			require.NoError(t, r.Err())
			break
		}
		events = append(events, ev)
	}
	return events
}

func TestNextStripsNamespacePrefixes(t *testing.T) {
	events := collect(t, `<ns:Root xmlns:ns="urn:example"><ns:Child id="1">text</ns:Child></ns:Root>`)

	require.Len(t, events, 5)
	assert.Equal(t, StartElement, events[0].Kind)
	assert.Equal(t, "Root", events[0].LocalName)
	assert.Equal(t, StartElement, events[1].Kind)
	assert.Equal(t, "Child", events[1].LocalName)
	require.Len(t, events[1].Attrs, 1)
	assert.Equal(t, "id", events[1].Attrs[0].Name)
	assert.Equal(t, "1", events[1].Attrs[0].Value)
	assert.Equal(t, Text, events[2].Kind)
	assert.Equal(t, "text", events[2].Text)
	assert.Equal(t, EndElement, events[3].Kind)
	assert.Equal(t, "Child", events[3].LocalName)
}

func TestNextSkipsWhitespaceOnlyText(t *testing.T) {
	events := collect(t, "<Root>\n  <Child/>\n</Root>")
	for _, ev := range events {
		if ev.Kind == Text {
			t.Fatalf("expected no whitespace-only text events, got %+v", ev)
		}
	}
}

func TestEmptySourceYieldsNoEventsAndNoError(t *testing.T) {
	r := New(strings.NewReader(""))
	defer r.Close()
	_, ok := r.Next()
	assert.False(t, ok)
	assert.NoError(t, r.Err())
}

func TestMalformedXMLSurfacesParseError(t *testing.T) {
	r := New(strings.NewReader("<Root><Unclosed>"))
	defer r.Close()
	for {
		_, ok := r.Next()
		if !ok {
			break
		}
	}
	var parseErr *ParseError
	require.ErrorAs(t, r.Err(), &parseErr)
}

func TestPathTracksOpenElements(t *testing.T) {
	r := New(strings.NewReader(`<Root><Child><Grandchild/></Child></Root>`))
	defer r.Close()

	for {
		ev, ok := r.Next()
		if !ok {
			break
		}
		if ev.Kind == StartElement && ev.LocalName == "Grandchild" {
			assert.Equal(t, []string{"Root", "Child", "Grandchild"}, r.Path())
		}
	}
}

func TestCloseIsSafeToCallTwice(t *testing.T) {
	r := New(strings.NewReader("<Root/>"))
	r.Close()
	require.NotPanics(t, r.Close)
}
