/*
Package sound implements SOUND token contract.

SOUND is a NEP-17 token with a fixed supply issued to the owner on deploy. Every
transfer is taxed unless the sender or the recipient is tax-free: the fee
`amount * rate / 10000` is withheld from the transferred amount and credited to
the balance of the contract itself. Transfers sent by the registered liquidity
pair use the buy rate, transfers received by it use the sell rate, all others use
the transfer rate. Withheld taxes are sent to the receiver account with
manualTransferTax by the owner or by authorized accounts.

Besides NEP-17 methods the contract provides approve, allowance and transferFrom,
so other contracts (SoundBox) can pull tokens from user wallets.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification. A taxed transfer
produces two notifications: the fee moved to the contract and the net amount moved
to the recipient.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Approval notification. It is produced when an owner changes allowance of a spender.

	Approval:
	  - name: owner
	    type: Hash160
	  - name: spender
	    type: Hash160
	  - name: amount
	    type: Integer

TaxUpdate notification. It is produced when the owner changes buy and sell rates.

	TaxUpdate:
	  - name: buyRate
	    type: Integer
	  - name: sellRate
	    type: Integer

TaxSweep notification. It is produced by manualTransferTax.

	TaxSweep:
	  - name: receiver
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package sound
