package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/olegabu/go-kmd/types"
)

var multisigsCmd = &cobra.Command{
	Use:   "multisigs wallet",
	Short: "Lists multisig accounts in the wallet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := openWallet(cmd, args[0])
		if err != nil {
			return err
		}
		addresses, err := w.ListMultisig()
		if err != nil {
			return errors.Wrap(err, "cannot ListMultisig")
		}

		multisigTable := tablewriter.NewWriter(os.Stdout)
		multisigTable.SetHeader([]string{"address"})
		multisigTable.SetCaption(true, "Multisig accounts in "+args[0])
		for _, address := range addresses {
			multisigTable.Append([]string{address})
		}
		multisigTable.Render()
		return nil
	},
}

var importMultisigCmd = &cobra.Command{
	Use:   "import-multisig wallet version threshold address1 address2 ...",
	Short: "Registers a multisig account built from member addresses",
	Args:  cobra.MinimumNArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := openWallet(cmd, args[0])
		if err != nil {
			return err
		}

		version, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Wrap(err, "cannot parse version")
		}
		threshold, err := strconv.Atoi(args[2])
		if err != nil {
			return errors.Wrap(err, "cannot parse threshold")
		}

		account := types.MultisigAccount{
			Version:   uint8(version),
			Threshold: uint8(threshold),
			Addresses: args[3:],
		}
		address, err := w.ImportMultisig(account)
		if err != nil {
			return errors.Wrap(err, "cannot ImportMultisig")
		}
		fmt.Printf("imported multisig account with address %v\n", address)
		return nil
	},
}

var exportMultisigCmd = &cobra.Command{
	Use:   "export-multisig wallet address",
	Short: "Prints the members of a multisig account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := openWallet(cmd, args[0])
		if err != nil {
			return err
		}
		account, err := w.ExportMultisig(args[1])
		if err != nil {
			return errors.Wrap(err, "cannot ExportMultisig")
		}

		memberTable := tablewriter.NewWriter(os.Stdout)
		memberTable.SetHeader([]string{"member address"})
		memberTable.SetCaption(true, fmt.Sprintf("version %d threshold %d", account.Version, account.Threshold))
		for _, memberAddress := range account.Addresses {
			memberTable.Append([]string{memberAddress})
		}
		memberTable.Render()
		return nil
	},
}

var deleteMultisigCmd = &cobra.Command{
	Use:   "delete-multisig wallet address",
	Short: "Deletes a multisig account from the wallet",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := openWallet(cmd, args[0])
		if err != nil {
			return err
		}
		deleted, err := w.DeleteMultisig(args[1])
		if err != nil {
			return errors.Wrap(err, "cannot DeleteMultisig")
		}
		if !deleted {
			return errors.Errorf("daemon did not confirm deleting %v", args[1])
		}
		fmt.Printf("deleted multisig account %v\n", args[1])
		return nil
	},
}
