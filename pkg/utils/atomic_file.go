package utils

import (
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/pkg/errors"
)

const tmpDirPattern = "google-ads-downloader-"

var rename = os.Rename

// WriteFileAtomic grava o conteúdo produzido por write em um arquivo dentro de um
// diretório temporário privado (criado em tmpRoot, ou no diretório temporário do
// sistema se vazio) e depois move o arquivo para target em uma única operação.
// O diretório temporário é removido em todos os caminhos de saída.
func WriteFileAtomic(tmpRoot, target string, write func(w io.Writer) error) error {
	tmpDir, err := os.MkdirTemp(tmpRoot, tmpDirPattern)
	if err != nil {
		return errors.Wrap(err, "erro ao criar diretório temporário")
	}
	defer os.RemoveAll(tmpDir)

	tmpPath := filepath.Join(tmpDir, filepath.Base(target))
	if err := writeFile(tmpPath, write); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.Wrapf(err, "erro ao criar diretório de destino %s", filepath.Dir(target))
	}

	return moveFile(tmpPath, target)
}

func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao criar arquivo temporário %s", path)
	}

	if err := write(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "erro ao escrever arquivo temporário %s", path)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return errors.Wrapf(err, "erro ao sincronizar arquivo temporário %s", path)
	}

	return errors.Wrapf(f.Close(), "erro ao fechar arquivo temporário %s", path)
}

// moveFile renomeia src para dst. Quando os dois estão em sistemas de arquivos
// diferentes, copia para um arquivo oculto ao lado de dst e renomeia esse arquivo;
// é o único caminho atômico possível nesse caso. Use um TMP_DIR no mesmo
// sistema de arquivos de DATA_DIR para evitar o arquivo ".partial".
func moveFile(src, dst string) error {
	err := rename(src, dst)
	if err == nil {
		return nil
	}

	if !errors.Is(err, syscall.EXDEV) {
		return errors.Wrapf(err, "erro ao mover %s para %s", src, dst)
	}

	staging := filepath.Join(filepath.Dir(dst), "."+filepath.Base(dst)+".partial")
	if err := copyFile(src, staging); err != nil {
		os.Remove(staging)
		return err
	}

	if err := rename(staging, dst); err != nil {
		os.Remove(staging)
		return errors.Wrapf(err, "erro ao mover %s para %s", staging, dst)
	}

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "erro ao abrir %s", src)
	}
	defer in.Close()

	return writeFile(dst, func(w io.Writer) error {
		_, err := io.Copy(w, in)
		return err
	})
}
