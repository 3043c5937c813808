package judge0

type (
	submissionRequest struct {
		SourceCode     string  `json:"source_code"`
		LanguageID     int     `json:"language_id"`
		Stdin          string  `json:"stdin"`
		ExpectedOutput *string `json:"expected_output,omitempty"`
	}

	batchRequest struct {
		Submissions []submissionRequest `json:"submissions"`
	}

	tokenResponse struct {
		Token string `json:"token"`
	}

	statusResponse struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
	}

	submissionResponse struct {
		Token         string          `json:"token"`
		Status        *statusResponse `json:"status"`
		Stdout        *string         `json:"stdout"`
		Stderr        *string         `json:"stderr"`
		CompileOutput *string         `json:"compile_output"`
		Time          *string         `json:"time"`
		Memory        *float64        `json:"memory"`
	}

	batchStatusResponse struct {
		Submissions []*submissionResponse `json:"submissions"`
	}
)
