package downloading

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/google-ads-downloader/internal/domain"
	"github.com/vfg2006/google-ads-downloader/pkg/log"
)

// AccountDirectory guarda as contas cliente de uma conta gerente durante uma execução.
// A construção não faz chamadas à API; as contas são carregadas por Load.
type AccountDirectory struct {
	service  ReportService
	retrier  *Retrier
	accounts []*domain.Account
}

func NewAccountDirectory(service ReportService, retrier *Retrier) *AccountDirectory {
	return &AccountDirectory{
		service: service,
		retrier: retrier,
	}
}

// Load busca as contas na API, descarta as contas gerentes e ids repetidos,
// mantendo a ordem devolvida pela API.
func (d *AccountDirectory) Load(ctx context.Context) error {
	var listed []*domain.Account

	err := d.retrier.Do(ctx, log.Fields{"operation": "list_accounts"}, func() error {
		var err error
		listed, err = d.service.ListAccounts(ctx)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "erro ao listar contas do Google Ads")
	}

	seen := make(map[string]bool, len(listed))
	accounts := make([]*domain.Account, 0, len(listed))
	managers := 0

	for _, account := range listed {
		if account == nil {
			continue
		}
		if account.CanManageClients {
			managers++
			continue
		}
		if seen[account.ID] {
			continue
		}
		seen[account.ID] = true
		accounts = append(accounts, account)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"accounts":         len(accounts),
		"manager_accounts": managers,
	}).Info("Contas do Google Ads carregadas")

	d.accounts = accounts
	return nil
}

// Accounts retorna as contas carregadas, na ordem de enumeração
func (d *AccountDirectory) Accounts() []*domain.Account {
	accounts := make([]*domain.Account, len(d.accounts))
	copy(accounts, d.accounts)
	return accounts
}
