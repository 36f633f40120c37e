package adsclient

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/vfg2006/google-ads-downloader/internal/config"
	"golang.org/x/oauth2"
)

const (
	adwordsScope = "https://www.googleapis.com/auth/adwords"
	// Fluxo de aplicação instalada: o código de verificação é mostrado na tela
	outOfBandRedirect = "urn:ietf:wg:oauth:2.0:oob"
)

// NewOAuth2Config monta a configuração OAuth2 de um conjunto de credenciais
func NewOAuth2Config(cfg config.GoogleAds, credentials config.AccountCredentials) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     credentials.OAuth2ClientID,
		ClientSecret: credentials.OAuth2ClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  cfg.OAuth2AuthURL,
			TokenURL: cfg.OAuth2TokenURL,
		},
		RedirectURL: outOfBandRedirect,
		Scopes:      []string{adwordsScope},
	}
}

// NewHTTPClient cria um http.Client que obtém e renova o access token a partir
// do refresh token. Nenhuma chamada é feita até a primeira requisição.
func NewHTTPClient(ctx context.Context, cfg config.GoogleAds, credentials config.AccountCredentials) *http.Client {
	tokenSource := NewOAuth2Config(cfg, credentials).TokenSource(ctx, &oauth2.Token{
		RefreshToken: credentials.OAuth2RefreshToken,
	})

	client := oauth2.NewClient(ctx, tokenSource)
	client.Timeout = cfg.Timeout
	return client
}

// TokenBroker conduz o fluxo interativo para gerar um novo refresh token
type TokenBroker struct {
	cfg config.GoogleAds
	in  *bufio.Reader
	out io.Writer
}

func NewTokenBroker(cfg config.GoogleAds, in io.Reader, out io.Writer) *TokenBroker {
	return &TokenBroker{
		cfg: cfg,
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Refresh mostra a URL de consentimento, lê o código de verificação e troca o
// código pelos tokens.
func (b *TokenBroker) Refresh(ctx context.Context, credentials config.AccountCredentials) (*oauth2.Token, error) {
	oauthConfig := NewOAuth2Config(b.cfg, credentials)
	authURL := oauthConfig.AuthCodeURL("state", oauth2.AccessTypeOffline, oauth2.ApprovalForce)

	fmt.Fprintf(b.out, "Log into the Google Account you use to access your Google Ads account "+
		"and go to the following URL: \n%s\n\n", authURL)
	fmt.Fprintln(b.out, "After approving the token enter the verification code (if specified).")
	fmt.Fprint(b.out, "Code: ")

	code, err := b.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("erro ao ler código de verificação: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("código de verificação vazio")
	}

	token, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("authentication has failed: %w", err)
	}

	fmt.Fprintf(b.out, "Access token: %s\n", token.AccessToken)
	fmt.Fprintf(b.out, "Refresh token: %s\n", token.RefreshToken)

	return token, nil
}
