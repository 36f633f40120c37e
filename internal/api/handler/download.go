package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/google-ads-downloader/internal/scheduler"
	"github.com/vfg2006/google-ads-downloader/pkg/apiErrors"
	"github.com/vfg2006/google-ads-downloader/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DownloadSync é o agendador visto pela API
type DownloadSync interface {
	TriggerManualSync() bool
	GetStatus() scheduler.DownloadSyncStatus
}

// RunDownload dispara manualmente um download completo
func RunDownload(service DownloadSync) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields := logrus.Fields{}
		if claims, ok := middleware.OperatorFromContext(r.Context()); ok {
			fields["operator"] = claims.Operator
		}
		logrus.WithFields(fields).Info("INIT - RunDownload")

		if !service.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Download já em andamento", service.GetStatus())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Download iniciado com sucesso",
		})
	}
}

// GetDownloadStatus retorna o status do agendador de download
func GetDownloadStatus(service DownloadSync) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(service.GetStatus())
	}
}
