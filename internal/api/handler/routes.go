package handler

import (
	"net/http"

	"github.com/vfg2006/google-ads-downloader/internal/api/handler/router"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Download(service DownloadSync) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/download/status",
			Method:  http.MethodGet,
			Handler: GetDownloadStatus(service),
		},
		{
			Path:    "/v1/download/run",
			Method:  http.MethodPost,
			Handler: RunDownload(service),
		},
	}
}
