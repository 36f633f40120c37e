package main

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/google-ads-downloader/internal/domain"
	"github.com/vfg2006/google-ads-downloader/pkg/utils"
)

var reportTypePattern = regexp.MustCompile(`<reportType>([A-Z_]+)</reportType>`)

const fakeReport = "\"REPORT\"\n" +
	"Day\tAd ID\tAd\tAd group ID\tAd group\tCampaign ID\tCampaign\tLabels\tAd type\tAd state\tClicks\n" +
	"%s\t10\tAnúncio\t20\tGrupo\t30\tCampanha\t[\"{canal=search}\"]\tEXPANDED_TEXT_AD\tenabled\t4\n" +
	"Total\t --\t --\t --\t --\t --\t --\t --\t --\t --\t4\n"

const fakeAccounts = `<?xml version="1.0" encoding="UTF-8"?>` +
	`<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"><soap:Body>` +
	`<getResponse><rval><totalNumEntries>2</totalNumEntries>` +
	`<entries><name>MCC</name><customerId>1</customerId><canManageClients>true</canManageClients></entries>` +
	`<entries><name>Loja</name><customerId>2</customerId><canManageClients>false</canManageClients>` +
	`<currencyCode>BRL</currencyCode></entries>` +
	`</rval></getResponse></soap:Body></soap:Envelope>`

// newFakeGoogleAds responde ao token OAuth2, à listagem de contas e aos relatórios
func newFakeGoogleAds(t *testing.T, day string) (*httptest.Server, func() []string) {
	t.Helper()

	var (
		mu      sync.Mutex
		reports []string
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/token":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"access_token":"at","token_type":"Bearer","expires_in":3600}`)
		case strings.HasSuffix(r.URL.Path, "/ManagedCustomerService"):
			assert.Equal(t, "Bearer at", r.Header.Get("Authorization"))
			fmt.Fprint(w, fakeAccounts)
		case strings.HasPrefix(r.URL.Path, "/api/adwords/reportdownload/"):
			assert.Equal(t, "2", r.Header.Get("clientCustomerId"))
			require.NoError(t, r.ParseForm())
			match := reportTypePattern.FindStringSubmatch(r.PostForm.Get("__rdxml"))
			require.Len(t, match, 2)

			mu.Lock()
			reports = append(reports, match[1])
			mu.Unlock()

			fmt.Fprintf(w, fakeReport, day)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	return server, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), reports...)
	}
}

func isolateEnv(t *testing.T) {
	t.Helper()
	chdirForTest(t, t.TempDir())

	for _, key := range []string{
		"GOOGLE_ADS_ACCOUNTS",
		"GOOGLE_ADS_CLIENT_CUSTOMER_ID",
		"GOOGLE_ADS_DEVELOPER_TOKEN",
		"GOOGLE_ADS_OAUTH2_REFRESH_TOKEN",
		"DATABASE_ENABLED",
		"AUTH_SECRET",
	} {
		t.Setenv(key, "")
	}
}

func gunzipFile(t *testing.T, path string) string {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	reader, err := gzip.NewReader(file)
	require.NoError(t, err)
	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	return string(content)
}

func TestDownloadCommand_EndToEnd(t *testing.T) {
	isolateEnv(t)

	yesterday := utils.Yesterday(time.Now())
	server, reports := newFakeGoogleAds(t, yesterday.Format(utils.DateLayout))
	t.Setenv("GOOGLE_ADS_BASE_URL", server.URL)
	t.Setenv("GOOGLE_ADS_OAUTH2_TOKEN_URL", server.URL+"/token")

	dataDir := t.TempDir()
	root := newRootCmd()
	root.SetArgs([]string{
		"download",
		"--data-dir", dataDir,
		"--first-date", yesterday.Format(utils.DateLayout),
		"--max-retries", "1",
		"--accounts", "principal,1,dev-token,client-id,secret,refresh",
	})
	require.NoError(t, root.Execute())

	assert.Equal(t, []string{
		string(domain.AdPerformanceReport),
		string(domain.CampaignPerformanceReport),
		string(domain.AdGroupPerformanceReport),
		string(domain.AdPerformanceReport),
	}, reports())

	daily := gunzipFile(t, filepath.Join(dataDir, yesterday.Format("2006"), yesterday.Format("01"),
		yesterday.Format("02"), "google-ads", "ad-performance_v5.json.gz"))
	assert.Contains(t, daily, `"Ad ID":"10"`)
	assert.Contains(t, daily, `"Clicks":"4"`)

	structure := gunzipFile(t, filepath.Join(dataDir, "google-ads-account-structure_v5.csv.gz"))
	lines := strings.Split(strings.TrimSuffix(structure, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "10\tAnúncio\t20\tGrupo\t30\tCampanha\t"))
	assert.Contains(t, lines[1], "BRL")
}

func TestDownloadCommand_WithoutCredentials(t *testing.T) {
	isolateEnv(t)

	root := newRootCmd()
	root.SetArgs([]string{"download", "--data-dir", t.TempDir()})

	assert.ErrorIs(t, root.Execute(), domain.ErrNoCredentials)
}

func TestDownloadFlags_Overrides(t *testing.T) {
	flags := &downloadFlags{}
	flagSet := pflag.NewFlagSet("download", pflag.ContinueOnError)
	flags.register(flagSet)

	require.NoError(t, flagSet.Parse([]string{
		"--redownload-window", "0",
		"--ignore-removed-campaigns",
		"--performance-reports", "ad,campaign",
		"--accounts", "a,1,t,c,s,r",
		"--accounts", "b,2,t,c,s,r",
	}))

	assert.Equal(t, map[string]interface{}{
		"REDOWNLOAD_WINDOW":        0,
		"IGNORE_REMOVED_CAMPAIGNS": true,
		"PERFORMANCE_REPORTS":      "ad,campaign",
		"GOOGLE_ADS_ACCOUNTS":      "a,1,t,c,s,r;b,2,t,c,s,r",
	}, flags.overrides(flagSet))
}

func TestIssueTokenCommand(t *testing.T) {
	isolateEnv(t)
	t.Setenv("AUTH_SECRET", "segredo")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"issue-token", "--operator", "ops", "--ttl", "1h"})

	require.NoError(t, root.Execute())
	assert.Len(t, strings.Split(strings.TrimSpace(out.String()), "."), 3)
}

func TestRefreshTokenCommand(t *testing.T) {
	isolateEnv(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "codigo", r.PostForm.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"at","refresh_token":"rt","token_type":"Bearer"}`)
	}))
	defer server.Close()
	t.Setenv("GOOGLE_ADS_OAUTH2_TOKEN_URL", server.URL)

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetIn(strings.NewReader("codigo\n"))
	root.SetArgs([]string{"refresh-oauth2-token", "--accounts", "principal,1,dev,client-id,secret,"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "== principal ==")
	assert.Contains(t, out.String(), "Refresh token: rt")
}
