package api

type CreateParamRequest struct {
	Name                    string `json:"name"`
	Type                    string `json:"type"`
	Description             string `json:"description,omitempty"`
	FailedValidationMessage string `json:"failed_validation_message,omitempty"`
}

type ParamInfo struct {
	Name                    string  `json:"name"`
	Type                    string  `json:"type"`
	Description             *string `json:"description"`
	FailedValidationMessage *string `json:"failed_validation_message"`
	CreatedAt               string  `json:"created_at"`
	ValueCount              int     `json:"value_count"`
}

type ListParamsResponse struct {
	Params []ParamInfo `json:"params"`
}

type BindValueRequest struct {
	RunID string  `json:"run_id,omitempty"`
	Value *string `json:"value,omitempty"`
}

type BindValueResponse struct {
	Name      string `json:"name"`
	RunID     string `json:"run_id"`
	Value     string `json:"value"`
	Generated bool   `json:"generated"`
}

type DefaultValueResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type BoundValueInfo struct {
	RunID     string `json:"run_id"`
	Value     string `json:"value"`
	Generated bool   `json:"generated"`
	BoundAt   string `json:"bound_at"`
}

type ListValuesResponse struct {
	Name   string           `json:"name"`
	Values []BoundValueInfo `json:"values"`
}

type ValidateRequest struct {
	FailedValidationMessage string `json:"failed_validation_message,omitempty"`
	Value                   string `json:"value"`
}

type ValidateResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

type TypeInfo struct {
	ID           string         `json:"id"`
	DisplayName  string         `json:"display_name"`
	Capabilities []string       `json:"capabilities"`
	Config       map[string]any `json:"config,omitempty"`
}

type ListTypesResponse struct {
	Types []TypeInfo `json:"types"`
}

type DeleteParamResponse struct {
	Deleted bool `json:"deleted"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
