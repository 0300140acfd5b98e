/*
Package soundbox implements SoundBox contract.

SoundBox keeps SOUND tokens in custody on behalf of users and sells albums. Each
user has a ledger balance in the box: deposit moves SOUND from the user wallet to
the box and credits the ledger, withdraw does the opposite, claim credits the
ledger with the amount authorized by a signature of the claim signer. Ledger
balances and the amount of SOUND actually held by the box are separate values,
the operator keeps the box funded to cover claimed amounts.

A claim is authorized by a secp256k1 signature of the message

	"\x19Ethereum Signed Message:\n32" || SHA-256(nonce || recipient || amount)

where nonce and amount are 32-byte big-endian integers and recipient is a
20-byte script hash. Every nonce can be redeemed once.

Albums are NEP-11 non-divisible tokens with sequential decimal IDs. New albums of
a catalog type are bought with buyNew for the type price in SOUND (paid from the
ledger) or in stable token (paid from the wallet to the receiver). The number of
minted albums is capped by maxSupply, with limited mode enabled every type also
has a stock. Owners can resell albums with sellAlbum once the market is enabled.

# Contract notifications

Transfer notification. This is a NEP-11 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: tokenId
	    type: ByteArray

Deposit notification. It is produced when a user deposits SOUND into the box,
amount is the credited ledger amount.

	Deposit:
	  - name: user
	    type: Hash160
	  - name: amount
	    type: Integer

Withdraw notification.

	Withdraw:
	  - name: user
	    type: Hash160
	  - name: amount
	    type: Integer

Claim notification. It is produced when a claim is redeemed.

	Claim:
	  - name: user
	    type: Hash160
	  - name: nonce
	    type: Integer
	  - name: amount
	    type: Integer

Listed notification. It is produced when an album is put up for sale.

	Listed:
	  - name: tokenId
	    type: ByteArray
	  - name: seller
	    type: Hash160
	  - name: asset
	    type: Integer
	  - name: price
	    type: Integer

Sold notification.

	Sold:
	  - name: tokenId
	    type: ByteArray
	  - name: seller
	    type: Hash160
	  - name: buyer
	    type: Hash160
	  - name: asset
	    type: Integer
	  - name: price
	    type: Integer
*/
package soundbox
