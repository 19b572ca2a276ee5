package web

type SendReq struct {
	To            string            `json:"to"`
	TemplateType  string            `json:"templateType"`
	Variables     map[string]string `json:"variables,omitempty"`
	CustomSubject string            `json:"customSubject,omitempty"`
	CustomMessage string            `json:"customMessage,omitempty"`
}

type SendResp struct {
	MessageID string `json:"messageId"`
}

type PreviewReq struct {
	TemplateType string            `json:"templateType"`
	Variables    map[string]string `json:"variables,omitempty"`
}

type PreviewResp struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}
