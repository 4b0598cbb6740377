package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/olegabu/go-kmd/client"
	"github.com/olegabu/go-kmd/config"
	"github.com/olegabu/go-kmd/encoding"
	"github.com/olegabu/go-kmd/mnemonic"
	"github.com/olegabu/go-kmd/types"
	"github.com/olegabu/go-kmd/wallet"
)

var flagDataDir string
var flagPassword string

func newClient(cmd *cobra.Command) (*client.Client, error) {
	cfg, err := config.LoadWithFlags(flagDataDir, cmd.Root().PersistentFlags())
	if err != nil {
		return nil, errors.Wrap(err, "cannot load config")
	}
	return client.New(cfg.Address, cfg.Token), nil
}

func openWallet(cmd *cobra.Command, name string) (*wallet.Wallet, error) {
	c, err := newClient(cmd)
	if err != nil {
		return nil, err
	}
	w, err := wallet.New(c, name, flagPassword)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open wallet "+name)
	}
	return w, nil
}

func main() {

	var versionsCmd = &cobra.Command{
		Use:   "versions",
		Short: "Prints API versions the daemon supports",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			versions, err := c.Versions()
			if err != nil {
				return errors.Wrap(err, "cannot get versions")
			}
			for _, version := range versions {
				fmt.Println(version)
			}
			return nil
		},
	}

	var walletsCmd = &cobra.Command{
		Use:   "wallets",
		Short: "Lists wallets hosted by the daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			wallets, err := c.ListWallets()
			if err != nil {
				return errors.Wrap(err, "cannot ListWallets")
			}

			walletTable := tablewriter.NewWriter(os.Stdout)
			walletTable.SetHeader([]string{"id", "name", "driver"})
			walletTable.SetCaption(true, "Wallets")
			for _, record := range wallets {
				walletTable.Append([]string{record.ID, record.Name, record.DriverName})
			}
			walletTable.Render()
			return nil
		},
	}

	var createWalletCmd = &cobra.Command{
		Use:   "create-wallet name [recovery_mnemonic]",
		Short: "Creates a wallet on the daemon",
		Long:  `Creates a wallet, optionally recovering it from a master derivation key mnemonic.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}

			var masterDerivationKey types.MasterDerivationKey
			if len(args) > 1 {
				masterDerivationKey, err = mnemonic.ToMasterDerivationKey(args[1])
				if err != nil {
					return errors.Wrap(err, "cannot parse recovery mnemonic")
				}
			}

			record, err := c.CreateWallet(args[0], flagPassword, "", masterDerivationKey)
			if err != nil {
				return errors.Wrap(err, "cannot CreateWallet")
			}
			fmt.Printf("created wallet %v with id %v\n", record.Name, record.ID)
			return nil
		},
	}

	var renameWalletCmd = &cobra.Command{
		Use:   "rename-wallet name new_name",
		Short: "Renames a wallet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWallet(cmd, args[0])
			if err != nil {
				return err
			}
			record, err := w.Rename(args[1])
			if err != nil {
				return errors.Wrap(err, "cannot Rename")
			}
			fmt.Printf("renamed wallet %v to %v\n", args[0], record.Name)
			return nil
		},
	}

	var exportMasterKeyCmd = &cobra.Command{
		Use:   "export-master-key wallet",
		Short: "Prints the wallet's master derivation key mnemonic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWallet(cmd, args[0])
			if err != nil {
				return err
			}
			masterDerivationKey, err := w.ExportMasterDerivationKey()
			if err != nil {
				return errors.Wrap(err, "cannot ExportMasterDerivationKey")
			}
			words, err := mnemonic.FromMasterDerivationKey(masterDerivationKey)
			if err != nil {
				return errors.Wrap(err, "cannot convert master derivation key to mnemonic")
			}
			fmt.Println(words)
			return nil
		},
	}

	var keysCmd = &cobra.Command{
		Use:   "keys wallet",
		Short: "Lists addresses in the wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWallet(cmd, args[0])
			if err != nil {
				return err
			}
			addresses, err := w.ListKeys()
			if err != nil {
				return errors.Wrap(err, "cannot ListKeys")
			}

			keyTable := tablewriter.NewWriter(os.Stdout)
			keyTable.SetHeader([]string{"address"})
			keyTable.SetCaption(true, "Keys in "+args[0])
			for _, address := range addresses {
				keyTable.Append([]string{address})
			}
			keyTable.Render()
			return nil
		},
	}

	var generateCmd = &cobra.Command{
		Use:   "generate wallet",
		Short: "Generates a key in the wallet",
		Long:  `Asks the daemon to generate a key inside the wallet; the private key never leaves it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWallet(cmd, args[0])
			if err != nil {
				return err
			}
			address, err := w.GenerateKey()
			if err != nil {
				return errors.Wrap(err, "cannot GenerateKey")
			}
			fmt.Println(address)
			return nil
		},
	}

	var importCmd = &cobra.Command{
		Use:   "import wallet mnemonic...",
		Short: "Imports a private key from its mnemonic",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWallet(cmd, args[0])
			if err != nil {
				return err
			}
			privateKey, err := mnemonic.ToPrivateKey(strings.Join(args[1:], " "))
			if err != nil {
				return errors.Wrap(err, "cannot parse key mnemonic")
			}
			address, err := w.ImportKey(privateKey)
			if err != nil {
				return errors.Wrap(err, "cannot ImportKey")
			}
			fmt.Printf("imported key with address %v\n", address)
			return nil
		},
	}

	var exportCmd = &cobra.Command{
		Use:   "export wallet address",
		Short: "Prints the mnemonic of a private key in the wallet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWallet(cmd, args[0])
			if err != nil {
				return err
			}
			privateKey, err := w.ExportKey(args[1])
			if err != nil {
				return errors.Wrap(err, "cannot ExportKey")
			}
			words, err := mnemonic.FromPrivateKey(privateKey)
			if err != nil {
				return errors.Wrap(err, "cannot convert key to mnemonic")
			}
			fmt.Println(words)
			return nil
		},
	}

	var deleteKeyCmd = &cobra.Command{
		Use:   "delete-key wallet address",
		Short: "Deletes a key from the wallet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWallet(cmd, args[0])
			if err != nil {
				return err
			}
			deleted, err := w.DeleteKey(args[1])
			if err != nil {
				return errors.Wrap(err, "cannot DeleteKey")
			}
			if !deleted {
				return errors.Errorf("daemon did not confirm deleting %v", args[1])
			}
			fmt.Printf("deleted key %v\n", args[1])
			return nil
		},
	}

	var signCmd = &cobra.Command{
		Use:   "sign wallet transaction_file",
		Short: "Signs a transaction with a key held by the daemon",
		Long:  `Reads a json transaction file, has the daemon sign it and writes the signed msgpack blob next to it.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWallet(cmd, args[0])
			if err != nil {
				return err
			}

			transactionFileName := args[1]
			txBytes, err := ioutil.ReadFile(transactionFileName)
			if err != nil {
				return errors.Wrap(err, "cannot read transaction file "+transactionFileName)
			}
			var tx types.Transaction
			if err = json.Unmarshal(txBytes, &tx); err != nil {
				return errors.Wrap(err, "cannot parse transaction file "+transactionFileName)
			}

			signed, err := w.SignTransaction(tx)
			if err != nil {
				return errors.Wrap(err, "cannot SignTransaction")
			}

			fileName := transactionFileName + ".stx"
			signedBytes, err := encoding.MsgpackEncode(signed)
			if err != nil {
				return errors.Wrap(err, "cannot encode signed transaction")
			}
			err = ioutil.WriteFile(fileName, signedBytes, 0644)
			if err != nil {
				return errors.Wrap(err, "cannot write file "+fileName)
			}
			fmt.Printf("wrote signed transaction to %v\n", fileName)
			return nil
		},
	}

	var rootCmd = &cobra.Command{
		Use:          "kmd",
		Short:        "Client for the key-management daemon",
		Long:         `Talks to a local key-management daemon that holds wallets and keys and signs transactions without exposing private keys.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data dir with kmd-client.yaml, default ~/.kmd")
	rootCmd.PersistentFlags().String("address", "", "daemon address, overrides config")
	rootCmd.PersistentFlags().String("token", "", "daemon API token, overrides config")
	rootCmd.PersistentFlags().StringVar(&flagPassword, "password", "", "wallet password")

	rootCmd.AddCommand(versionsCmd, walletsCmd, createWalletCmd, renameWalletCmd, exportMasterKeyCmd,
		keysCmd, generateCmd, importCmd, exportCmd, deleteKeyCmd, signCmd,
		multisigsCmd, importMultisigCmd, exportMultisigCmd, deleteMultisigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
