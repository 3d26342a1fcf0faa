package schema

import "github.com/vvka-141/premisgen/internal/binding"

// Event records an action performed on objects.
type Event struct {
	EventIdentifier         *EventIdentifier           `xml:"eventIdentifier"`
	EventType               *StringPlusAuthority       `xml:"eventType"`
	EventDateTime           string                     `xml:"eventDateTime"`
	EventDetail             []string                   `xml:"eventDetailInformation>eventDetail,omitempty"`
	LinkingAgentIdentifier  []*LinkingAgentIdentifier  `xml:"linkingAgentIdentifier,omitempty"`
	LinkingObjectIdentifier []*LinkingObjectIdentifier `xml:"linkingObjectIdentifier,omitempty"`
}

func (*Event) Kind() binding.Kind { return KindEvent }

func (e *Event) ScalarProperties() []binding.Scalar {
	return []binding.Scalar{
		binding.ScalarOf("eventIdentifier", &e.EventIdentifier),
		binding.ScalarOf("eventType", &e.EventType),
		binding.ScalarOf("eventDateTime", &e.EventDateTime),
	}
}

func (e *Event) RepeatedProperties() []binding.Repeated {
	return []binding.Repeated{
		binding.RepeatedOf("eventDetail", &e.EventDetail),
		binding.RepeatedOf("linkingAgentIdentifier", &e.LinkingAgentIdentifier),
		binding.RepeatedOf("linkingObjectIdentifier", &e.LinkingObjectIdentifier),
	}
}

type EventIdentifier struct {
	EventIdentifierType  *StringPlusAuthority `xml:"eventIdentifierType"`
	EventIdentifierValue string               `xml:"eventIdentifierValue"`
}

func (*EventIdentifier) Kind() binding.Kind { return KindEventIdentifier }

func (e *EventIdentifier) ScalarProperties() []binding.Scalar {
	return []binding.Scalar{
		binding.ScalarOf("eventIdentifierType", &e.EventIdentifierType),
		binding.ScalarOf("eventIdentifierValue", &e.EventIdentifierValue),
	}
}

type LinkingAgentIdentifier struct {
	LinkingAgentIdentifierType  *StringPlusAuthority   `xml:"linkingAgentIdentifierType"`
	LinkingAgentIdentifierValue string                 `xml:"linkingAgentIdentifierValue"`
	LinkingAgentRole            []*StringPlusAuthority `xml:"linkingAgentRole,omitempty"`
}

func (*LinkingAgentIdentifier) Kind() binding.Kind { return KindLinkingAgentIdentifier }

func (l *LinkingAgentIdentifier) ScalarProperties() []binding.Scalar {
	return []binding.Scalar{
		binding.ScalarOf("linkingAgentIdentifierType", &l.LinkingAgentIdentifierType),
		binding.ScalarOf("linkingAgentIdentifierValue", &l.LinkingAgentIdentifierValue),
	}
}

func (l *LinkingAgentIdentifier) RepeatedProperties() []binding.Repeated {
	return []binding.Repeated{binding.RepeatedOf("linkingAgentRole", &l.LinkingAgentRole)}
}

type LinkingObjectIdentifier struct {
	LinkingObjectIdentifierType  *StringPlusAuthority `xml:"linkingObjectIdentifierType"`
	LinkingObjectIdentifierValue string               `xml:"linkingObjectIdentifierValue"`
}

func (*LinkingObjectIdentifier) Kind() binding.Kind { return KindLinkingObjectIdentifier }

func (l *LinkingObjectIdentifier) ScalarProperties() []binding.Scalar {
	return []binding.Scalar{
		binding.ScalarOf("linkingObjectIdentifierType", &l.LinkingObjectIdentifierType),
		binding.ScalarOf("linkingObjectIdentifierValue", &l.LinkingObjectIdentifierValue),
	}
}
