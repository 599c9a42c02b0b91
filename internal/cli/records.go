package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/recordkeeper/internal/auth"
	"github.com/dmitrijs2005/recordkeeper/internal/common"
	"github.com/dmitrijs2005/recordkeeper/internal/customers"
	"github.com/dmitrijs2005/recordkeeper/internal/validate"
)

func (a *App) List(ctx context.Context) error {
	a.printCustomers(a.customers.List())
	return nil
}

func (a *App) Add(ctx context.Context) error {
	if !auth.Allowed(a.session, auth.ActionCreateRecords) {
		fmt.Fprintln(a.out, "Permission denied")
		return common.ErrorNotAuthenticated
	}

	form, customerType, err := a.readCustomerForm()
	if err != nil {
		return err
	}

	_, err = a.customers.Add(ctx, form.Name, form.Email, form.Phone, form.Address, customerType)
	fmt.Fprintln(a.out, outcomeMessage(err))
	return err
}

func (a *App) Edit(ctx context.Context) error {
	if !auth.Allowed(a.session, auth.ActionEditRecords) {
		fmt.Fprintln(a.out, "Permission denied: only admins may edit records")
		return common.ErrorNotAuthenticated
	}

	id, err := GetInt(a.reader, "Customer id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	form, customerType, err := a.readCustomerForm()
	if err != nil {
		return err
	}

	err = a.customers.Update(ctx, id, form.Name, form.Email, form.Phone, form.Address, customerType)
	fmt.Fprintln(a.out, outcomeMessage(err))
	return err
}

func (a *App) Delete(ctx context.Context) error {
	if !auth.Allowed(a.session, auth.ActionDeleteRecords) {
		fmt.Fprintln(a.out, "Permission denied: only admins may delete records")
		return common.ErrorNotAuthenticated
	}

	id, err := GetInt(a.reader, "Customer id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	ok, err := GetConfirmation(a.reader, fmt.Sprintf("Delete customer %d?", id), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	err = a.customers.Delete(ctx, id)
	fmt.Fprintln(a.out, outcomeMessage(err))
	return err
}

func (a *App) Search(ctx context.Context, keyword string) error {
	a.printCustomers(a.customers.Search(keyword))
	return nil
}

// Sort handles "sort <column> [desc]". Column names match the stored field
// names: id, name, email, phone, customer_type, created_at.
func (a *App) Sort(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: sort <id|name|email|phone|customer_type|created_at> [desc]")
		return nil
	}

	descending := len(args) > 1 && args[1] == "desc"
	sorted := a.customers.Sort(customers.SortColumn(args[0]), descending)
	a.printCustomers(sorted)
	return nil
}

func (a *App) readCustomerForm() (validate.CustomerForm, customers.CustomerType, error) {
	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return validate.CustomerForm{}, "", err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return validate.CustomerForm{}, "", err
	}
	phone, err := GetSimpleText(a.reader, "Phone", a.out)
	if err != nil {
		return validate.CustomerForm{}, "", err
	}
	address, err := GetSimpleText(a.reader, "Address", a.out)
	if err != nil {
		return validate.CustomerForm{}, "", err
	}
	typeText, err := GetSimpleText(a.reader, "Type (regular/vip)", a.out)
	if err != nil {
		return validate.CustomerForm{}, "", err
	}

	form := validate.CustomerForm{Name: name, Email: email, Phone: phone, Address: address}
	if err := validate.Customer(form); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return validate.CustomerForm{}, "", err
	}
	return form, customers.ParseCustomerType(typeText), nil
}

func (a *App) printCustomers(list []customers.Customer) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No customers")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tADDRESS\tTYPE\tCREATED")
	for _, c := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, c.Email, c.Phone, c.Address,
			c.CustomerType.Label(), c.CreatedAt.Format(time.DateTime))
	}
	_ = w.Flush()
}
