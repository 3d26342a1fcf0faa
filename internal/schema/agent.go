package schema

import "github.com/vvka-141/premisgen/internal/binding"

// Agent is a person, organization or software acting on objects.
type Agent struct {
	AgentIdentifier []*AgentIdentifier     `xml:"agentIdentifier"`
	AgentName       []*StringPlusAuthority `xml:"agentName,omitempty"`
	AgentType       *StringPlusAuthority   `xml:"agentType,omitempty"`
	AgentNote       []string               `xml:"agentNote,omitempty"`
}

func (*Agent) Kind() binding.Kind { return KindAgent }

func (a *Agent) ScalarProperties() []binding.Scalar {
	return []binding.Scalar{binding.ScalarOf("agentType", &a.AgentType)}
}

func (a *Agent) RepeatedProperties() []binding.Repeated {
	return []binding.Repeated{
		binding.RepeatedOf("agentIdentifier", &a.AgentIdentifier),
		binding.RepeatedOf("agentName", &a.AgentName),
		binding.RepeatedOf("agentNote", &a.AgentNote),
	}
}

type AgentIdentifier struct {
	AgentIdentifierType  *StringPlusAuthority `xml:"agentIdentifierType"`
	AgentIdentifierValue string               `xml:"agentIdentifierValue"`
}

func (*AgentIdentifier) Kind() binding.Kind { return KindAgentIdentifier }

func (a *AgentIdentifier) ScalarProperties() []binding.Scalar {
	return []binding.Scalar{
		binding.ScalarOf("agentIdentifierType", &a.AgentIdentifierType),
		binding.ScalarOf("agentIdentifierValue", &a.AgentIdentifierValue),
	}
}

// Rights groups rights statements.
type Rights struct {
	RightsStatement []*RightsStatement `xml:"rightsStatement"`
}

func (*Rights) Kind() binding.Kind { return KindRights }

func (r *Rights) RepeatedProperties() []binding.Repeated {
	return []binding.Repeated{binding.RepeatedOf("rightsStatement", &r.RightsStatement)}
}

type RightsStatement struct {
	RightsStatementIdentifier *RightsStatementIdentifier `xml:"rightsStatementIdentifier,omitempty"`
	RightsBasis               *StringPlusAuthority       `xml:"rightsBasis"`
	RightsGranted             []*RightsGranted           `xml:"rightsGranted,omitempty"`
	LinkingObjectIdentifier   []*LinkingObjectIdentifier `xml:"linkingObjectIdentifier,omitempty"`
}

func (*RightsStatement) Kind() binding.Kind { return KindRightsStatement }

func (r *RightsStatement) ScalarProperties() []binding.Scalar {
	return []binding.Scalar{
		binding.ScalarOf("rightsStatementIdentifier", &r.RightsStatementIdentifier),
		binding.ScalarOf("rightsBasis", &r.RightsBasis),
	}
}

func (r *RightsStatement) RepeatedProperties() []binding.Repeated {
	return []binding.Repeated{
		binding.RepeatedOf("rightsGranted", &r.RightsGranted),
		binding.RepeatedOf("linkingObjectIdentifier", &r.LinkingObjectIdentifier),
	}
}

type RightsStatementIdentifier struct {
	RightsStatementIdentifierType  *StringPlusAuthority `xml:"rightsStatementIdentifierType"`
	RightsStatementIdentifierValue string               `xml:"rightsStatementIdentifierValue"`
}

func (*RightsStatementIdentifier) Kind() binding.Kind { return KindRightsStatementIdentifier }

func (r *RightsStatementIdentifier) ScalarProperties() []binding.Scalar {
	return []binding.Scalar{
		binding.ScalarOf("rightsStatementIdentifierType", &r.RightsStatementIdentifierType),
		binding.ScalarOf("rightsStatementIdentifierValue", &r.RightsStatementIdentifierValue),
	}
}

type RightsGranted struct {
	Act               *StringPlusAuthority   `xml:"act"`
	Restriction       []*StringPlusAuthority `xml:"restriction,omitempty"`
	RightsGrantedNote []string               `xml:"rightsGrantedNote,omitempty"`
}

func (*RightsGranted) Kind() binding.Kind { return KindRightsGranted }

func (r *RightsGranted) ScalarProperties() []binding.Scalar {
	return []binding.Scalar{binding.ScalarOf("act", &r.Act)}
}

func (r *RightsGranted) RepeatedProperties() []binding.Repeated {
	return []binding.Repeated{
		binding.RepeatedOf("restriction", &r.Restriction),
		binding.RepeatedOf("rightsGrantedNote", &r.RightsGrantedNote),
	}
}
