package download

import (
	"net/http"
	"strconv"
)

// State is the HTTP status a download finished with. Zero means no
// response was received.
type State uint

func (s State) IsInfo() bool        { return s >= 100 && s < 200 }
func (s State) IsSuccess() bool     { return s >= 200 && s < 300 }
func (s State) IsRedirect() bool    { return s >= 300 && s < 400 }
func (s State) IsClientError() bool { return s >= 400 && s < 500 }
func (s State) IsServerError() bool { return s >= 500 && s < 600 }
func (s State) IsError() bool       { return s >= 400 }
func (s State) IsOK() bool          { return s == http.StatusOK }

func (s State) String() string {
	if s == 0 {
		return "no response"
	}
	txt := http.StatusText(int(s))
	if txt == "" {
		return strconv.Itoa(int(s))
	}
	return strconv.Itoa(int(s)) + " " + txt
}
