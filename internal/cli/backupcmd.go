package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/recordkeeper/internal/auth"
	"github.com/dmitrijs2005/recordkeeper/internal/common"
)

// Backup uploads a snapshot of both store files to object storage.
func (a *App) Backup(ctx context.Context) error {
	if !auth.Allowed(a.session, auth.ActionManageBackups) {
		fmt.Fprintln(a.out, "Permission denied: only admins may run backups")
		return common.ErrorNotAuthenticated
	}

	if err := a.backups.Upload(ctx, []string{a.accountsPath, a.customersPath}); err != nil {
		fmt.Fprintf(a.out, "Backup failed: %s\n", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Backup complete")
	return nil
}
