package repository

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/google-ads-downloader/internal/config"
	"github.com/vfg2006/google-ads-downloader/internal/domain"
	"github.com/vfg2006/google-ads-downloader/pkg/utils"
)

// Chaves de mapa ordenadas: o mesmo conteúdo sempre gera os mesmos bytes
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ReportFileRepository grava os relatórios em arquivos gzip abaixo de DataDir:
//
//	<data_dir>/<YYYY>/<MM>/<DD>/<source>[/<folder>]/<report>_<version>.json.gz
//	<data_dir>/<source>-account-structure_<version>[_<folder>].csv.gz
type ReportFileRepository struct {
	dataDir string
	tmpDir  string
	source  string
	version string
	folder  string
}

func NewReportFileRepository(cfg config.Download, folder string) *ReportFileRepository {
	return &ReportFileRepository{
		dataDir: cfg.DataDir,
		tmpDir:  cfg.TmpDir,
		source:  cfg.SourceName,
		version: cfg.OutputFileVersion,
		folder:  folder,
	}
}

func (r *ReportFileRepository) DailyReportPath(date time.Time, reportType domain.ReportType) string {
	return filepath.Join(
		r.dataDir,
		date.Format("2006"),
		date.Format("01"),
		date.Format("02"),
		r.source,
		r.folder,
		fmt.Sprintf("%s_%s.json.gz", reportType.FileName(), r.version),
	)
}

func (r *ReportFileRepository) StructurePath() string {
	name := fmt.Sprintf("%s-account-structure_%s", r.source, r.version)
	if r.folder != "" {
		name += "_" + r.folder
	}
	return filepath.Join(r.dataDir, name+".csv.gz")
}

// Exists considera apenas arquivos regulares; um diretório no caminho é erro
func (r *ReportFileRepository) Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "erro ao verificar arquivo %s", path)
	}
	if !info.Mode().IsRegular() {
		return false, errors.Errorf("%s não é um arquivo regular", path)
	}
	return true, nil
}

func (r *ReportFileRepository) SaveDailyReport(path string, rows []domain.ReportRow) error {
	if rows == nil {
		rows = []domain.ReportRow{}
	}

	return utils.WriteFileAtomic(r.tmpDir, path, func(w io.Writer) error {
		return writeGzip(w, func(gz io.Writer) error {
			encoded, err := json.Marshal(rows)
			if err != nil {
				return errors.Wrap(err, "erro ao serializar relatório")
			}
			_, err = gz.Write(encoded)
			return err
		})
	})
}

func (r *ReportFileRepository) SaveAccountStructure(path string, header []string, records [][]string) error {
	return utils.WriteFileAtomic(r.tmpDir, path, func(w io.Writer) error {
		return writeGzip(w, func(gz io.Writer) error {
			writer := csv.NewWriter(gz)
			writer.Comma = '\t'

			if err := writer.Write(header); err != nil {
				return errors.Wrap(err, "erro ao gravar cabeçalho")
			}
			if err := writer.WriteAll(records); err != nil {
				return errors.Wrap(err, "erro ao gravar linhas")
			}
			return nil
		})
	})
}

// writeGzip comprime o que write produzir; o cabeçalho gzip não leva data de
// modificação, então o mesmo conteúdo gera o mesmo arquivo.
func writeGzip(w io.Writer, write func(gz io.Writer) error) error {
	gz := gzip.NewWriter(w)
	if err := write(gz); err != nil {
		_ = gz.Close()
		return err
	}
	return errors.Wrap(gz.Close(), "erro ao finalizar gzip")
}
