package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/theflywheel/chtable"
)

// Account is a bank account record
type Account struct {
	ClientName string
	BankCode   int
	BranchCode int
	Number     int
	Balance    float64
}

// AccountKey identifies an account by client, bank, branch and number
type AccountKey struct {
	ClientName string
	BankCode   int
	BranchCode int
	Number     int
}

// Key returns the lookup key of the account
func (a Account) Key() AccountKey {
	return AccountKey{a.ClientName, a.BankCode, a.BranchCode, a.Number}
}

func (a Account) String() string {
	return fmt.Sprintf("[ Client: <%s> Bank: <%d> Branch: <%d> Number: <%d> Balance: <%.2f> ]",
		a.ClientName, a.BankCode, a.BranchCode, a.Number, a.Balance)
}

func hashAccountKey(k AccountKey) uint64 {
	return chtable.Combine(
		chtable.String(k.ClientName),
		chtable.Int(k.BankCode),
		chtable.Int(k.BranchCode),
		chtable.Int(k.Number),
	)
}

func main() {
	capacity := flag.Int("capacity", 4, "initial number of buckets")
	verbose := flag.Bool("v", false, "log rehashes")
	flag.Parse()

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	accounts, err := chtable.NewComparable[AccountKey, Account](*capacity, hashAccountKey,
		chtable.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}

	records := []Account{
		{"Jose Silva", 1, 1668, 54321, 1500},
		{"Carlos Prada", 1, 1668, 45794, 530},
		{"Jose Silva", 1, 1668, 54321, 1500},
		{"Pedro Fernandes", 1, 1669, 34567, 3930},
		{"Maria Pinheiro", 1, 1668, 12345, 2450},
		{"Gabriel Ratts", 13, 557, 98765, 320},
	}

	for _, acct := range records {
		added, err := accounts.Insert(acct.Key(), acct)
		if err != nil {
			log.Fatalf("Failed to insert %s: %v", acct, err)
		}
		if added {
			fmt.Println("Inserted", acct)
		} else {
			fmt.Println("Updated ", acct)
		}
	}

	fmt.Printf("Table holds %d accounts in %d buckets\n", accounts.Count(), accounts.Capacity())
	if err := accounts.Dump(os.Stdout); err != nil {
		log.Fatalf("Failed to dump table: %v", err)
	}

	key := records[1].Key()
	if acct, ok := accounts.Retrieve(key); ok {
		fmt.Println("Found", acct)
	}

	if accounts.Remove(key) {
		fmt.Printf("Removed %+v\n", key)
	}
	if _, ok := accounts.Retrieve(key); !ok {
		fmt.Printf("%+v not found\n", key)
	}

	accounts.Clear()
	fmt.Printf("After clear: empty=%v count=%d\n", accounts.IsEmpty(), accounts.Count())
}
