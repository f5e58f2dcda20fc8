package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/pandodao/carbon-wallet/core"
)

type settingsView struct {
	Theme    string        `json:"theme"`
	Dark     bool          `json:"dark"`
	Network  core.Network  `json:"network"`
	Networks []networkView `json:"networks"`
}

type networkView struct {
	Name     core.Network `json:"name"`
	Endpoint string       `json:"endpoint"`
}

type aboutView struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Networks    []networkView `json:"networks"`
}

var networks = []networkView{
	{Name: core.NetworkTestnet, Endpoint: core.NetworkTestnet.Endpoint()},
	{Name: core.NetworkMainnet, Endpoint: core.NetworkMainnet.Endpoint()},
}

func (s *Server) settings(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, s.settingsView())
}

func (s *Server) settingsView() settingsView {
	return settingsView{
		Theme:    s.theme.Name(),
		Dark:     s.theme.IsDark(),
		Network:  s.wallet.Snapshot().Network,
		Networks: networks,
	}
}

// setTheme sets the theme from {"dark": bool}, or toggles it when the body
// does not say.
func (s *Server) setTheme(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Dark *bool `json:"dark"`
	}

	if err := decodeBody(r, &body); err != nil && !errors.Is(err, io.EOF) {
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	var err error
	if body.Dark != nil {
		err = s.theme.Set(r.Context(), *body.Dark)
	} else {
		_, err = s.theme.Toggle(r.Context())
	}

	if err != nil {
		renderError(w, http.StatusInternalServerError, "failed to save theme")
		return
	}

	renderJSON(w, http.StatusOK, s.settingsView())
}

func (s *Server) setNetwork(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Network string `json:"network"`
	}

	if err := decodeBody(r, &body); err != nil {
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	network, err := core.ParseNetwork(body.Network)
	if err != nil {
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.wallet.SetNetwork(network); err != nil {
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	renderJSON(w, http.StatusOK, s.settingsView())
}

func (s *Server) about(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, aboutView{
		Name:        core.AppName,
		Description: core.AppDescription,
		Networks:    networks,
	})
}
